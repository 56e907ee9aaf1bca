package marketplace

import "fmt"

// AffiliateURL builds the tagged Amazon product link for asin under the
// given associate tag, per spec.md §4.5.
func AffiliateURL(asin, associateTag string) string {
	return fmt.Sprintf("https://www.amazon.com/dp/%s?tag=%s", asin, associateTag)
}
