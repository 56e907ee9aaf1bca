package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors the on-disk topfive.yaml structure. Every section is
// optional; an absent section leaves the built-in default untouched.
type yamlConfig struct {
	Niche       *NichePoolConfig   `yaml:"niche"`
	Outlets     *OutletsConfig     `yaml:"outlets"`
	Marketplace *MarketplaceConfig `yaml:"marketplace"`
	Job         *JobConfig         `yaml:"job"`
	Telegram    *TelegramConfig    `yaml:"telegram"`
	Retention   *RetentionConfig   `yaml:"retention"`
	Production  *ProductionConfig  `yaml:"production"`
}

// Load reads topfive.yaml from configDir (if present), expands
// environment variables, merges it over the built-in defaults, and
// validates the result. A missing file is not an error: Load returns
// the defaults unchanged.
func Load(configDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, "topfive.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if verr := validate(cfg); verr != nil {
				return nil, verr
			}
			return cfg, nil
		}
		return nil, NewLoadError(path, err)
	}

	var overlay yamlConfig
	if err := yaml.Unmarshal(ExpandEnv(raw), &overlay); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	if err := mergeInto(cfg, &overlay); err != nil {
		return nil, NewLoadError(path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeInto layers an optional YAML overlay on top of cfg's built-in
// defaults in place. Scalar sections merge via mergo.WithOverride (a
// non-zero overlay field wins); the niche pool and outlet whitelist
// merge by concatenation/override-by-key since they are additive
// supplements to a fixed in-code set, not replacements for it.
func mergeInto(cfg *Config, overlay *yamlConfig) error {
	cfg.Niche = mergeNiche(cfg.Niche, overlay.Niche)
	cfg.Outlets = mergeOutlets(cfg.Outlets, overlay.Outlets)

	if overlay.Marketplace != nil {
		if err := mergo.Merge(cfg.Marketplace, overlay.Marketplace, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging marketplace config: %w", err)
		}
	}
	if overlay.Job != nil {
		if err := mergo.Merge(cfg.Job, overlay.Job, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging job config: %w", err)
		}
	}
	if overlay.Telegram != nil {
		if err := mergo.Merge(cfg.Telegram, overlay.Telegram, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging telegram config: %w", err)
		}
	}
	if overlay.Retention != nil {
		if err := mergo.Merge(cfg.Retention, overlay.Retention, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging retention config: %w", err)
		}
	}
	if overlay.Production != nil {
		if err := mergo.Merge(cfg.Production, overlay.Production, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging production config: %w", err)
		}
	}
	return nil
}
