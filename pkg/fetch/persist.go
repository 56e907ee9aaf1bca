package fetch

import (
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// persist writes r's text and metadata under dir as <slug>.md and
// <slug>.json, atomically. A no-op on a failed result — there is nothing
// worth persisting.
func persist(dir string, r *models.FetchResult) error {
	if !r.OK() {
		return nil
	}

	slug := fsutil.Slug(r.URL)
	mdPath := filepath.Join(dir, slug+".md")
	jsonPath := filepath.Join(dir, slug+".json")

	if err := fsutil.WriteFileAtomic(mdPath, []byte(r.Text), 0o644); err != nil {
		return err
	}

	meta := models.FetchCacheEntry{
		URL:           r.URL,
		Method:        r.Method,
		ContentType:   r.ContentType,
		TokenEstimate: r.TokenEstimate,
		ContentLength: r.ContentLength,
		FetchedAt:     r.FetchedAt,
	}
	if err := fsutil.WriteJSONAtomic(jsonPath, meta); err != nil {
		return err
	}

	r.ArtifactPath = mdPath
	return nil
}
