package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/deanrtaylor1/gowordcloud/sanitizer"
)

// Document is a single loaded post: the frontmatter title, if any, and the
// body with markup metadata already out of the way.
type Document struct {
	Path  string
	Title string
	Body  string
}

// Text returns the document content with the title prepended, which gives
// title words the same weight as body words.
func (d Document) Text() string {
	if d.Title != "" {
		return d.Title + "\n" + d.Body
	}
	return d.Body
}

type matter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// Walk returns the sorted paths of all markdown and html files under
// target. Sorting pins the processing order so repeated runs count tokens
// in the same first-seen order.
func Walk(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("target directory not found: %s", target)
	}

	var paths []string
	err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".html":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking target directory %s: %w", target, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// Load reads a single document from disk. Markdown files go through
// frontmatter extraction; html files get their text content extracted up
// front so the rest of the pipeline only ever sees prose.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("error reading document %s: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".html" {
		return Document{
			Path: path,
			Body: sanitizer.ExtractHTMLText(string(data)),
		}, nil
	}

	var m matter
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &m)
	if err != nil {
		return Document{}, fmt.Errorf("error parsing frontmatter in %s: %w", path, err)
	}

	return Document{
		Path:  path,
		Title: m.Title,
		Body:  string(body),
	}, nil
}
