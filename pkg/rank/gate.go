// Package rank turns a set of verified products into a scored, labeled
// Top-5: subcategory gating, weighted composite scoring, regret penalty,
// rank/label assignment, and narrative-field synthesis.
package rank

import (
	"strings"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// Rejection records why a product was dropped by the subcategory gate,
// for logging — the gate runs before scoring, per spec.md §4.6 step 1.
type Rejection struct {
	ProductName string
	Reason      string
}

// ApplyGate drops any product the subcategory contract rejects. A nil
// contract passes everything through.
func ApplyGate(products []models.VerifiedProduct, contract *models.SubcategoryContract) ([]models.VerifiedProduct, []Rejection) {
	if contract == nil {
		return products, nil
	}

	var passed []models.VerifiedProduct
	var rejected []Rejection
	for _, p := range products {
		haystack := strings.ToLower(p.ProductName + " " + p.AmazonTitle + " " + strings.Join(p.KeyClaims, " "))
		if contract.Allows(haystack) {
			passed = append(passed, p)
		} else {
			rejected = append(rejected, Rejection{ProductName: p.ProductName, Reason: "subcategory contract rejected"})
		}
	}
	return passed, rejected
}
