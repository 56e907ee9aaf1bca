package config

import "time"

// DefaultConfig returns the built-in configuration used when no YAML
// overlay is present, matching the defaults spec.md assigns to each
// subsystem (job throughput, finalize retention) so a freshly cloned
// deployment runs without any configuration file at all.
func DefaultConfig() *Config {
	return &Config{
		Niche: &NichePoolConfig{
			LookbackDays: 30,
		},
		Outlets: &OutletsConfig{},
		Marketplace: &MarketplaceConfig{
			AssociateTagEnv:  "AMAZON_ASSOCIATE_TAG",
			AccessKeyEnv:     "AMAZON_PAAPI_ACCESS_KEY",
			SecretKeyEnv:     "AMAZON_PAAPI_SECRET_KEY",
			PreferPAAPI:      true,
			ThrottleInterval: time.Second,
		},
		Job: &JobConfig{
			Root:               "data/jobs",
			MaxJobsPerHour:     10,
			MaxConcurrentJobs:  1,
			MaxIterations:      20,
			CheckpointInterval: 5,
		},
		Telegram: &TelegramConfig{
			TokenEnv: "TELEGRAM_BOT_TOKEN",
		},
		Retention: &RetentionConfig{
			JobRetentionDays: 90,
			RunRetentionDays: 180,
			CleanupInterval:  12 * time.Hour,
		},
		Production: &ProductionConfig{
			MaxRunsPerDay:       1,
			NoRepeatProductDays: 15,
			MinUniqueProducts:   5,
			ScriptTargetMinutes: 8,
			AllowUpload:         false,
		},
	}
}
