package config

import "os"

// ExpandEnv expands environment variables in YAML content using Go's standard library.
// Supports both ${VAR} and $VAR syntax (standard shell-style).
//
// Examples:
//   - ${AMAZON_ASSOCIATE_TAG} → value of AMAZON_ASSOCIATE_TAG environment variable
//   - $JOBS_ROOT → value of JOBS_ROOT environment variable
//   - ${SUPABASE_URL}/rest/v1 → URL with the variable expanded
//
// Missing variables expand to empty string. Validation should catch required fields that are empty.
func ExpandEnv(data []byte) []byte {
	expanded := os.ExpandEnv(string(data))
	return []byte(expanded)
}
