package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// entry is one loaded file: the raw source plus whether it renders as
// markdown.
type entry struct {
	name     string
	source   string
	markdown bool
}

// loadEntries resolves pattern against dir and loads every matching regular
// file, sorted by name. Files with a .md extension are marked for markdown
// rendering.
func loadEntries(dir, pattern string) ([]entry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	fsys := os.DirFS(dir)
	var entries []entry
	err := doublestar.GlobWalk(fsys, pattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		entries = append(entries, entry{
			name:     filepath.FromSlash(path),
			source:   string(data),
			markdown: strings.EqualFold(filepath.Ext(path), ".md"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no files match %s", pattern)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries, nil
}
