package rank

import (
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// ProductKey is the identity used to detect a product repeated across
// runs for the no-repeat-product lookback, preferring ASIN (stable
// across title rewrites) and falling back to a normalized product name.
// Grounded on market_auto_dispatch.py's product_key/product_key_for_item.
func ProductKey(p models.VerifiedProduct) string {
	if p.ASIN != "" {
		return strings.ToLower(p.ASIN)
	}
	return strings.ToLower(strings.TrimSpace(p.ProductName))
}

// FilterRepeats splits products into a fresh/repeated partition by
// ProductKey membership in blocked, then returns fresh alone unless that
// would leave fewer than minUnique candidates — in which case repeated
// entries are appended back (in their original rank order) to keep the
// list fillable. This mirrors market_auto_dispatch.py's
// split_products_by_novelty plus its "insufficient_unique_candidates"
// fallback of continuing dispatch rather than hard-blocking.
func FilterRepeats(products []models.VerifiedProduct, blocked map[string]bool, minUnique int) []models.VerifiedProduct {
	if len(blocked) == 0 {
		return products
	}

	var fresh, repeated []models.VerifiedProduct
	for _, p := range products {
		if blocked[ProductKey(p)] {
			repeated = append(repeated, p)
		} else {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) >= minUnique {
		return fresh
	}
	return append(fresh, repeated...)
}
