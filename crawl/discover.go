// Package crawl provides note discovery for --all mode.
// A directory is walked for note files; a single note is used as an entry
// point and the local notes it links to are followed breadth-first.
package crawl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/notepipe/core"
)

// maxLinkedNotes bounds link following from a single entry note.
const maxLinkedNotes = 100

// DiscoverAll finds the notes to process starting from root. A directory
// yields every note file below it in lexical order, skipping hidden entries.
// A file yields itself followed by the notes reachable through its links
// that live in the same directory tree.
func DiscoverAll(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("discovering %s: %w", root, core.ErrNotFound)
		}
		return nil, fmt.Errorf("discovering %s: %w", root, err)
	}
	if info.IsDir() {
		return discoverFromTree(ctx, root)
	}
	return discoverFromLinks(ctx, root)
}

// discoverFromTree walks root for note files.
func discoverFromTree(ctx context.Context, root string) ([]string, error) {
	queue := NewQueue()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path != root && IsHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsNoteFile(path) {
			queue.Add(NormalizePath(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return queue.All(), nil
}

// discoverFromLinks follows links breadth-first from start.
func discoverFromLinks(ctx context.Context, start string) ([]string, error) {
	base := filepath.Dir(NormalizePath(start))
	queue := NewQueue()
	queue.Add(NormalizePath(start))

	for queue.HasNext() && queue.Seen() < maxLinkedNotes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := queue.Next()

		data, err := os.ReadFile(current)
		if err != nil {
			continue // Skip unreadable notes, don't block discovery.
		}

		for _, link := range extractLinks(data, current) {
			if !IsWithin(link, base) || !isFile(link) {
				continue
			}
			queue.Add(link)
		}
	}

	return queue.All(), nil
}

// markdownLink matches [text](target) and [text](target "title").
var markdownLink = regexp.MustCompile(`\[[^\]]*\]\(\s*<?([^)\s>]+)>?(?:\s+"[^"]*")?\s*\)`)

// extractLinks returns the local note paths linked from a note, resolved
// against the note's own location.
func extractLinks(data []byte, from string) []string {
	var hrefs []string
	switch strings.ToLower(filepath.Ext(from)) {
	case ".html", ".htm":
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
		if err != nil {
			return nil
		}
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			if href, ok := s.Attr("href"); ok {
				hrefs = append(hrefs, href)
			}
		})
	default:
		for _, m := range markdownLink.FindAllSubmatch(data, -1) {
			hrefs = append(hrefs, string(m[1]))
		}
	}

	var links []string
	for _, href := range hrefs {
		if p := resolveLink(href, from); p != "" {
			links = append(links, p)
		}
	}
	return links
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
