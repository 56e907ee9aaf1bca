package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Job, cfg.Job)
}

func TestLoad_MergesOverlayOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
job:
  max_concurrent_jobs: 3
telegram:
  admin_ids: [111, 222]
outlets:
  weight_overrides:
    - domain: reviewed.com
      weight: 1.0
niche:
  extra_candidates:
    - keyword: standing desk converters
      category: home office
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "topfive.yaml"), []byte(yamlBody), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Job.MaxConcurrentJobs)
	assert.Equal(t, 10, cfg.Job.MaxJobsPerHour, "unset fields keep the built-in default")
	assert.Equal(t, []int64{111, 222}, cfg.Telegram.AdminIDs)
	assert.Len(t, cfg.Outlets.WeightOverrides, 1)
	assert.Len(t, cfg.Niche.ExtraCandidates, 1)
	assert.Equal(t, "standing desk converters", cfg.Niche.ExtraCandidates[0].Keyword)
}

func TestLoad_MergesProductionOverlayOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
production:
  allow_upload: true
  max_runs_per_day: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "topfive.yaml"), []byte(yamlBody), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Production.AllowUpload)
	assert.Equal(t, 2, cfg.Production.MaxRunsPerDay)
	assert.Equal(t, 15, cfg.Production.NoRepeatProductDays, "unset fields keep the built-in default")
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOPFIVE_TEST_TAG", "myaffid-20")
	yamlBody := `
marketplace:
  associate_tag_env: "${TOPFIVE_TEST_TAG}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "topfive.yaml"), []byte(yamlBody), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "myaffid-20", cfg.Marketplace.AssociateTagEnv)
}

func TestLoad_InvalidYAMLReturnsLoadError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "topfive.yaml"), []byte("job: [this is not a map"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_ValidationFailureIsReturnedAsValidationError(t *testing.T) {
	dir := t.TempDir()
	// -1 rather than 0: mergo.WithOverride leaves the builtin default in
	// place for a zero-value overlay field, so only a non-zero invalid
	// value actually reaches validation.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "topfive.yaml"), []byte("job:\n  max_concurrent_jobs: -1\n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestLoad_ConfigDirIsRecorded(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ConfigDir())
}
