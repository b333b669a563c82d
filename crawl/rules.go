// Package crawl — note filtering rules.
// Provides helpers to filter and normalize note paths during discovery.
package crawl

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/notepipe/core/fetch"
)

// noteExtensions are the file extensions treated as notes.
var noteExtensions = map[string]bool{
	".md": true, ".markdown": true, ".txt": true,
	".html": true, ".htm": true,
}

// IsNoteFile reports whether path looks like a note: a text, Markdown or
// HTML file, or a serialized block sequence.
func IsNoteFile(path string) bool {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, fetch.BlocksSuffix) {
		return true
	}
	return noteExtensions[filepath.Ext(lower)]
}

// IsHidden reports whether a file or directory name is hidden (dot-prefixed).
func IsHidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".") && name != ".."
}

// IsWithin reports whether path lies inside root.
func IsWithin(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// NormalizePath cleans a path for deduplication.
func NormalizePath(path string) string {
	return filepath.Clean(path)
}

// resolveLink resolves a note link relative to the note that contains it.
// External, anchor-only and non-note links resolve to "".
func resolveLink(href, from string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return ""
	}
	p := filepath.FromSlash(u.Path)
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(from), p)
	}
	if !IsNoteFile(p) {
		return ""
	}
	return NormalizePath(p)
}
