package config

import (
	"os"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// validate checks structural invariants via struct tags (`validate:"..."`
// on JobConfig, RetentionConfig, OutletOverride), matching the teacher's
// validator/v10-based section validation in pkg/config/validator.go.
// Environment-variable presence is NOT checked here — that is
// RequireEnv's job, invoked lazily at the point a credential is
// actually needed (matching the teacher's token_env indirection: a bot
// that never runs doesn't need a token).
func validate(cfg *Config) error {
	if err := structValidator.Struct(cfg.Job); err != nil {
		return wrapFieldError("job", err)
	}
	if err := structValidator.Struct(cfg.Retention); err != nil {
		return wrapFieldError("retention", err)
	}
	if err := structValidator.Struct(cfg.Outlets); err != nil {
		return wrapFieldError("outlets", err)
	}
	if err := structValidator.Struct(cfg.Production); err != nil {
		return wrapFieldError("production", err)
	}
	return nil
}

func wrapFieldError(component string, err error) error {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return NewValidationError(component, "", fe.Field(), ErrMissingRequiredField)
		}
		return NewValidationError(component, "", fe.Field(), ErrInvalidValue)
	}
	return NewValidationError(component, "", "", err)
}

// RequireEnv reads name from the environment and returns
// ErrMissingRequiredField wrapped in a ValidationError if it is unset
// or empty. Callers use this at the point a credential is actually
// needed (marketplace verification, the Telegram bot, the Supabase
// mirror) rather than at startup, so a deployment that never exercises
// a given integration never needs its secret.
func RequireEnv(component, name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", NewValidationError(component, name, "", ErrMissingRequiredField)
	}
	return v, nil
}
