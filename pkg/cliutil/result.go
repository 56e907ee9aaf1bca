// Package cliutil gives every cmd/ entrypoint the same machine-readable
// exit contract spec.md §6 requires: a JSON summary on stdout and a
// non-zero exit code on failure.
package cliutil

import (
	"encoding/json"
	"fmt"
	"os"
)

// Result is the {ok, error?, ...} envelope every command prints.
type Result struct {
	OK    bool `json:"ok"`
	Error string `json:"error,omitempty"`
	Data  any `json:"data,omitempty"`
}

// Emit writes data (or err's message) as a Result to stdout and exits
// the process: 0 on success, 1 on error.
func Emit(data any, err error) {
	res := Result{OK: err == nil, Data: data}
	if err != nil {
		res.Error = err.Error()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(res); encErr != nil {
		fmt.Fprintln(os.Stderr, "cliutil: failed to encode result:", encErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
