package niche

import (
	"os"
	"time"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// HistoryStore persists the process-wide niche_history.json: an ordered
// list of NicheHistoryEntry with at most one entry per date.
type HistoryStore struct {
	path    string
	entries []models.NicheHistoryEntry
}

// LoadHistoryStore reads niche_history.json from path. A missing file is
// treated as an empty history, not an error — the very first run has none.
func LoadHistoryStore(path string) (*HistoryStore, error) {
	s := &HistoryStore{path: path}
	err := fsutil.ReadJSON(path, &s.entries)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Entries returns the full history in insertion/date order.
func (s *HistoryStore) Entries() []models.NicheHistoryEntry {
	out := make([]models.NicheHistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Upsert records the niche chosen for date, replacing any prior entry for
// that same date (the invariant is "at most one entry per date", not
// append-only), then saves atomically.
func (s *HistoryStore) Upsert(entry models.NicheHistoryEntry) error {
	for i := range s.entries {
		if s.entries[i].Date == entry.Date {
			s.entries[i] = entry
			return s.save()
		}
	}
	s.entries = append(s.entries, entry)
	return s.save()
}

func (s *HistoryStore) save() error {
	return fsutil.WriteJSONAtomic(s.path, s.entries)
}

// UsedWithin returns the set of niches chosen within the given lookback
// window ending at asOf.
func UsedWithin(entries []models.NicheHistoryEntry, asOf time.Time, lookback time.Duration) map[string]bool {
	used := make(map[string]bool)
	for _, e := range entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		if asOf.Sub(d) < lookback {
			used[e.Niche] = true
		}
	}
	return used
}

// lastUsedWithin reports whether a value (category/subcategory/intent)
// was used within the lookback window ending at asOf.
func lastUsedWithin(entries []models.NicheHistoryEntry, asOf time.Time, lookback time.Duration, get func(models.NicheHistoryEntry) string, value string) bool {
	for _, e := range entries {
		if get(e) != value {
			continue
		}
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		if asOf.Sub(d) < lookback {
			return true
		}
	}
	return false
}
