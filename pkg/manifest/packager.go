// Package manifest merges a run's ranked products, asset plan, and
// narration plan into the NLE-facing edit manifest,
// marker sheet, and human-readable summary the manifest stage's QA
// gate requires.
package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// Packager builds the edit manifest from a run's upstream stage
// outputs, re-read from disk per spec.md §5.
type Packager struct{}

// NewPackager constructs a Packager. It holds no state.
func NewPackager() *Packager { return &Packager{} }

// Run reads inputs/products.json under rootDir and asset_plan.json and
// narration_plan.json under resolveDir, merges them, and writes
// edit_manifest.json, markers.csv, and notes.md to resolveDir.
func (p *Packager) Run(rootDir, resolveDir, niche, runSlug string, warnings []string) (models.EditManifest, error) {
	var products []models.TopProduct
	if err := fsutil.ReadJSON(filepath.Join(rootDir, "inputs", "products.json"), &products); err != nil {
		return models.EditManifest{}, fmt.Errorf("read products.json: %w", err)
	}

	var assetPlan models.AssetPlan
	if err := fsutil.ReadJSON(filepath.Join(resolveDir, "asset_plan.json"), &assetPlan); err != nil {
		return models.EditManifest{}, fmt.Errorf("read asset_plan.json: %w", err)
	}

	var narrationPlan models.NarrationPlan
	if err := fsutil.ReadJSON(filepath.Join(resolveDir, "narration_plan.json"), &narrationPlan); err != nil {
		return models.EditManifest{}, fmt.Errorf("read narration_plan.json: %w", err)
	}

	manifest := build(niche, runSlug, products, assetPlan, narrationPlan, warnings)

	if err := fsutil.WriteJSONAtomic(filepath.Join(resolveDir, "edit_manifest.json"), manifest); err != nil {
		return models.EditManifest{}, fmt.Errorf("write edit_manifest.json: %w", err)
	}
	if err := writeMarkersCSV(filepath.Join(resolveDir, "markers.csv"), manifest); err != nil {
		return models.EditManifest{}, err
	}
	if err := writeNotesMD(filepath.Join(resolveDir, "notes.md"), manifest); err != nil {
		return models.EditManifest{}, err
	}
	return manifest, nil
}

// build joins products, assetPlan, and narrationPlan by rank into one
// ManifestClip per product.
func build(niche, runSlug string, products []models.TopProduct, assetPlan models.AssetPlan, narrationPlan models.NarrationPlan, warnings []string) models.EditManifest {
	promptByRank := make(map[int]string, len(assetPlan.Specs))
	for _, spec := range assetPlan.Specs {
		promptByRank[spec.Rank] = spec.Prompt
	}
	segmentByRank := make(map[int]models.NarrationSegment, len(narrationPlan.Segments))
	for _, seg := range narrationPlan.Segments {
		segmentByRank[seg.Rank] = seg
	}

	clips := make([]models.ManifestClip, 0, len(products))
	for _, prod := range products {
		seg := segmentByRank[prod.Rank]
		clips = append(clips, models.ManifestClip{
			Rank:          prod.Rank,
			ProductName:   prod.ProductName,
			CategoryLabel: prod.CategoryLabel,
			AssetPrompt:   promptByRank[prod.Rank],
			NarrationText: seg.Text,
			StartMS:       seg.StartMS,
			DurationMS:    seg.DurationMS,
		})
	}

	return models.EditManifest{RunSlug: runSlug, Niche: niche, Clips: clips, Warnings: warnings}
}

// writeMarkersCSV writes one row per clip: timestamp, rank, product
// name — for NLE marker import.
func writeMarkersCSV(path string, m models.EditManifest) error {
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure resolve dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create markers.csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"timestamp_ms", "rank", "product_name"}); err != nil {
		return fmt.Errorf("write markers.csv header: %w", err)
	}
	for _, clip := range m.Clips {
		row := []string{strconv.FormatInt(clip.StartMS, 10), strconv.Itoa(clip.Rank), clip.ProductName}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write markers.csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// writeNotesMD writes a human-readable run summary: niche, Top-5 list,
// and any brand-diversity/reviewer warnings.
func writeNotesMD(path string, m models.EditManifest) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", m.Niche)
	fmt.Fprintf(&b, "Run: %s\n", m.RunSlug)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().UTC().Format(time.RFC3339))
	b.WriteString("## Top 5\n\n")
	for _, clip := range m.Clips {
		fmt.Fprintf(&b, "%d. **%s** — %s\n", clip.Rank, clip.ProductName, clip.CategoryLabel)
	}
	if len(m.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range m.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return fsutil.WriteFileAtomic(path, []byte(b.String()), 0o644)
}
