package calfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug normalizes a team name to a lowercase hyphenated file slug.
func Slug(name string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(s, "-")
}

// TeamFileName is the deterministic output name for one team's calendar.
func TeamFileName(teamName, yearLabel string) string {
	return fmt.Sprintf("btsh-%s-season-%s.ics", Slug(teamName), yearLabel)
}

// CombinedFileName is the output name for the all-games calendar.
func CombinedFileName(yearLabel string) string {
	return fmt.Sprintf("btsh-all-games-season-%s.ics", yearLabel)
}

// Store writes calendar documents beneath a base directory.
type Store struct {
	baseDir string
}

// NewStore constructs a store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Path returns the absolute location a named calendar is written to.
func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// Write persists content at name, creating parent directories as needed. The
// file is written fully to a temp path then renamed so a failed run never
// leaves a half-written calendar. Returns false without touching the file
// when the existing content is byte-identical.
func (s *Store) Write(name string, content []byte) (bool, error) {
	target := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, content) {
		return false, nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, target); err != nil {
		return false, err
	}
	return true, nil
}
