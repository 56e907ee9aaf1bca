package script

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// Service runs the full draft → refine → parse → extract-metadata
// pipeline and writes each stage's output to outDir, per spec.md §4.7.
type Service struct {
	generator *Generator
}

// NewService wraps a Generator.
func NewService(generator *Generator) *Service {
	return &Service{generator: generator}
}

// Run executes the pipeline and writes script_raw.txt, script_final.txt,
// script.txt, and script_gen_meta.json under outDir. Deterministic given
// identical prompts and a stubbed generator, per the Testable Property
// in spec.md §8.
func (s *Service) Run(ctx context.Context, draftPrompt, refineTemplate, outDir string) (models.ScriptGenMeta, error) {
	if err := fsutil.EnsureDir(outDir); err != nil {
		return models.ScriptGenMeta{}, fmt.Errorf("ensure script output dir: %w", err)
	}

	raw, draftMeta, err := s.generator.Draft(ctx, draftPrompt)
	if err != nil {
		return models.ScriptGenMeta{}, fmt.Errorf("draft stage: %w", err)
	}
	if err := fsutil.WriteFileAtomic(filepath.Join(outDir, "script_raw.txt"), []byte(raw), 0o644); err != nil {
		return models.ScriptGenMeta{}, fmt.Errorf("write script_raw.txt: %w", err)
	}

	final, refineMeta, err := s.generator.Refine(ctx, raw, refineTemplate)
	if err != nil {
		return models.ScriptGenMeta{}, fmt.Errorf("refine stage: %w", err)
	}
	if err := fsutil.WriteFileAtomic(filepath.Join(outDir, "script_final.txt"), []byte(final), 0o644); err != nil {
		return models.ScriptGenMeta{}, fmt.Errorf("write script_final.txt: %w", err)
	}

	normalized := Normalize(final)
	body := ExtractBody(normalized)
	if err := fsutil.WriteFileAtomic(filepath.Join(outDir, "script.txt"), []byte(body), 0o644); err != nil {
		return models.ScriptGenMeta{}, fmt.Errorf("write script.txt: %w", err)
	}

	avatarIntro, youtubeDescription, thumbnailHeadlines := ExtractMetadata(normalized)
	meta := models.ScriptGenMeta{
		AvatarIntro:        avatarIntro,
		YoutubeDescription: youtubeDescription,
		ThumbnailHeadlines: thumbnailHeadlines,
		Calls:              []models.ScriptCallMeta{draftMeta, refineMeta},
		TotalDurationMS:    draftMeta.DurationMS + refineMeta.DurationMS,
		TotalTokenEstimate: draftMeta.TokenEstimate + refineMeta.TokenEstimate,
	}
	if err := fsutil.WriteJSONAtomic(filepath.Join(outDir, "script_gen_meta.json"), meta); err != nil {
		return models.ScriptGenMeta{}, fmt.Errorf("write script_gen_meta.json: %w", err)
	}

	return meta, nil
}
