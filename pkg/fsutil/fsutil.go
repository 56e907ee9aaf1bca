// Package fsutil provides the atomic-write, slugging, and timestamp helpers
// shared by every package that persists JSON under a run or job workspace.
package fsutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// nonAlnum matches any run of characters that is not a letter or digit.
var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Slug derives a filesystem-safe identifier from a URL: strip the scheme,
// replace non-alphanumeric runs with "_", collapse repeats, and truncate to
// 80 chars. Used to name cache/persistence files per fetched URL.
func Slug(rawURL string) string {
	s := rawURL
	if idx := strings.Index(s, "://"); idx >= 0 {
		s = s[idx+3:]
	}
	s = nonAlnum.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 80 {
		s = s[:80]
	}
	s = strings.Trim(s, "_")
	if s == "" {
		s = "page"
	}
	return s
}

// ISODate formats t as a date-only ISO-8601 string (e.g. "2026-07-31"),
// the key format used throughout niche history and run slugs.
func ISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// RunSlug builds the "<slug>-<date>" directory name for a run.
func RunSlug(theme string, t time.Time) string {
	base := nonAlnum.ReplaceAllString(strings.ToLower(theme), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "run"
	}
	return base + "-" + ISODate(t)
}

// WriteFileAtomic writes data to path by creating a temp file in the same
// directory, fsyncing it, then renaming over the destination. This avoids
// torn writes if the process is killed mid-write — readers either see the
// old complete file or the new complete file, never a partial one.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	// Ensure the temp file is removed on any failure path below.
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	success = true
	return nil
}

// WriteJSONAtomic marshals v with indentation and writes it atomically.
func WriteJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json for %s: %w", path, err)
	}
	return WriteFileAtomic(path, data, 0o644)
}

// ReadJSON unmarshals the file at path into v. Returns os.ErrNotExist
// unwrapped when the file is absent, so callers can use os.IsNotExist.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal json from %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates dir (and parents) if it does not already exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
