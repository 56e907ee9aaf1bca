package config

import (
	"time"

	"github.com/ridgeline-media/topfive/pkg/job"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// Config is the fully resolved, validated configuration for one process
// invocation (a CLI command or the Telegram-driven admin surface).
type Config struct {
	configDir   string
	Niche       *NichePoolConfig
	Outlets     *OutletsConfig
	Marketplace *MarketplaceConfig
	Job         *JobConfig
	Telegram    *TelegramConfig
	Retention   *RetentionConfig
	Production  *ProductionConfig
}

// ConfigDir returns the directory Config was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// NichePoolConfig supplements the in-code candidate pool
// (pkg/niche.Pool) with operator-supplied additions, and bounds the
// rotation lookback window used to penalize recently-picked niches.
type NichePoolConfig struct {
	ExtraCandidates []models.NicheCandidate `yaml:"extra_candidates,omitempty"`
	LookbackDays    int                     `yaml:"lookback_days,omitempty"`
}

// OutletOverride adjusts a whitelisted outlet's source weight without
// recompiling pkg/research.Outlets.
type OutletOverride struct {
	Domain string  `yaml:"domain" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gt=0"`
}

// OutletsConfig governs the reviews-research whitelist shared by
// research aggregation and the orchestrator's security gate.
type OutletsConfig struct {
	AllowedResearchDomains []string         `yaml:"allowed_research_domains,omitempty"`
	WeightOverrides        []OutletOverride `yaml:"weight_overrides,omitempty" validate:"dive"`
}

// MarketplaceConfig governs Amazon verification: which credentials to
// read and whether the signed PA-API path is preferred over the browser
// fallback.
type MarketplaceConfig struct {
	AssociateTagEnv  string        `yaml:"associate_tag_env,omitempty"`
	AccessKeyEnv     string        `yaml:"access_key_env,omitempty"`
	SecretKeyEnv     string        `yaml:"secret_key_env,omitempty"`
	PreferPAAPI      bool          `yaml:"prefer_paapi,omitempty"`
	ThrottleInterval time.Duration `yaml:"throttle_interval,omitempty"`
}

// JobConfig mirrors job.Config's fields so they can be YAML-configured;
// ToJobConfig converts it to the type pkg/job actually consumes.
type JobConfig struct {
	Root               string `yaml:"root,omitempty"`
	MaxJobsPerHour     int    `yaml:"max_jobs_per_hour,omitempty" validate:"gt=0"`
	MaxConcurrentJobs  int    `yaml:"max_concurrent_jobs,omitempty" validate:"gt=0"`
	MaxIterations      int    `yaml:"max_iterations,omitempty" validate:"gt=0"`
	CheckpointInterval int    `yaml:"checkpoint_interval,omitempty" validate:"gte=0"`
}

// ToJobConfig converts the YAML-facing JobConfig into the job.Config
// pkg/job.Manager actually consumes.
func (j *JobConfig) ToJobConfig() job.Config {
	return job.Config{
		MaxJobsPerHour:     j.MaxJobsPerHour,
		MaxConcurrentJobs:  j.MaxConcurrentJobs,
		MaxIterations:      j.MaxIterations,
		CheckpointInterval: j.CheckpointInterval,
	}
}

// TelegramConfig names the admin allowlist and the environment variable
// holding the bot token (never the token itself, matching the teacher's
// token_env indirection for Slack/GitHub).
type TelegramConfig struct {
	TokenEnv string  `yaml:"token_env,omitempty"`
	AdminIDs []int64 `yaml:"admin_ids,omitempty"`
}

// RetentionConfig controls how long job workspaces and published runs
// are kept before pkg/cleanup removes them.
type RetentionConfig struct {
	JobRetentionDays int           `yaml:"job_retention_days,omitempty" validate:"gt=0"`
	RunRetentionDays int           `yaml:"run_retention_days,omitempty" validate:"gt=0"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval,omitempty" validate:"gte=0"`
}

// ProductionConfig governs the daily dispatch discipline the original
// market_auto_dispatch.py enforced ahead of this repo's in-process
// orchestrator: an episode cap, a product-repeat lookback, a script
// length target, and the upload approval gate. AllowUpload defaults to
// false (the zero value) so a freshly cloned deployment can never
// publish without an operator explicitly opting in, mirroring
// --allow-upload's default-off "to enforce human approval gates"
// behavior in the original.
type ProductionConfig struct {
	MaxRunsPerDay       int  `yaml:"max_runs_per_day,omitempty" validate:"gte=0"`
	NoRepeatProductDays int  `yaml:"no_repeat_product_days,omitempty" validate:"gte=0"`
	MinUniqueProducts   int  `yaml:"min_unique_products,omitempty" validate:"gte=0"`
	ScriptTargetMinutes int  `yaml:"script_target_minutes,omitempty" validate:"gte=0"`
	AllowUpload         bool `yaml:"allow_upload,omitempty"`
}
