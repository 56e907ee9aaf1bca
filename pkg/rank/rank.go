package rank

import (
	"fmt"
	"sort"
	"time"

	"github.com/ridgeline-media/topfive/pkg/models"
)

// topN is the Top-5 ranker's target list size, per spec.md §4.6 step 3.
const topN = 5

// brandDiversityThreshold is the number of same-brand entries in the
// Top-5 that triggers an informational warning, per spec.md §4.6 step 5.
const brandDiversityThreshold = 3

// Ranker turns verified products into a scored, labeled, narrated
// Top-5 list.
type Ranker struct {
	bus             *models.Bus
	stage           string
	blockedProducts map[string]bool
	minUnique       int
}

// NewRanker builds a Ranker. bus may be nil to suppress the brand
// diversity warning (e.g. in unit tests that don't care about it).
func NewRanker(bus *models.Bus, stage string) *Ranker {
	return &Ranker{bus: bus, stage: stage}
}

// SetNoveltyBlocklist enables the no-repeat-product lookback:
// FilterRepeats excludes any product key present in blocked unless doing
// so would leave fewer than minUnique candidates. A nil/empty blocked
// map (the default) disables the filter entirely. Grounded on
// market_auto_dispatch.py's --no-repeat-days / --min-unique-products.
func (r *Ranker) SetNoveltyBlocklist(blocked map[string]bool, minUnique int) {
	r.blockedProducts = blocked
	r.minUnique = minUnique
}

// Rank runs the full pipeline from spec.md §4.6: subcategory gate,
// weighted scoring, top-5 selection, rank/label assignment, brand
// diversity warning, and narrative synthesis.
func (r *Ranker) Rank(products []models.VerifiedProduct, contract *models.SubcategoryContract) []models.TopProduct {
	gated, _ := ApplyGate(products, contract)
	gated = FilterRepeats(gated, r.blockedProducts, r.minUnique)

	type scored struct {
		product   models.VerifiedProduct
		scorecard models.Scorecard
	}
	all := make([]scored, 0, len(gated))
	for _, p := range gated {
		all = append(all, scored{product: p, scorecard: Score(p)})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].scorecard.Total > all[j].scorecard.Total
	})

	n := topN
	if len(all) < n {
		n = len(all)
	}
	top := all[:n]

	results := make([]models.TopProduct, 0, len(top))
	for i, s := range top {
		rank := i + 1
		tp := models.TopProduct{
			VerifiedProduct: s.product,
			Rank:            rank,
			CategoryLabel:   AssignLabel(rank, s.product),
			Scorecard:       s.scorecard,
		}
		Synthesize(&tp, tp.KeyClaims)
		results = append(results, tp)
	}

	r.warnOnBrandConcentration(results)
	return results
}

// warnOnBrandConcentration publishes an informational bus message if a
// single brand accounts for >= brandDiversityThreshold of the Top-5. It
// never fails the run, per spec.md §4.6 step 5.
func (r *Ranker) warnOnBrandConcentration(products []models.TopProduct) {
	if r.bus == nil {
		return
	}
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Brand]++
	}
	for brand, count := range counts {
		if count >= brandDiversityThreshold {
			r.bus.Publish(models.Message{
				Sender:   "rank",
				Receiver: models.BroadcastReceiver,
				Type:     models.MsgInfo,
				Stage:    r.stage,
				Content: fmt.Sprintf("brand diversity warning: %s accounts for %d of %d picks",
					brand, count, len(products)),
				Timestamp: time.Now(),
			})
			return
		}
	}
}
