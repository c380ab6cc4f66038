package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkSortedPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.md"), "b")
	writeFile(t, filepath.Join(dir, "a", "z.md"), "z")
	writeFile(t, filepath.Join(dir, "a", "page.html"), "<p>x</p>")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	paths, err := Walk(dir)
	if err != nil {
		t.Fatalf("Walk() Failed: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "a", "page.html"),
		filepath.Join(dir, "a", "z.md"),
		filepath.Join(dir, "b.md"),
	}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("Walk() Failed, expected %v, got %v", expected, paths)
	}
}

func TestWalkMissingTarget(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Walk() expected an error for a missing target directory")
	}
}

func TestLoadMarkdownWithFrontmatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.md")
	writeFile(t, path, "---\ntitle: API Guide\ndate: 2025-01-02\n---\n\nbody text here\n")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() Failed: %v", err)
	}
	if doc.Title != "API Guide" {
		t.Errorf("Load() Failed, expected title %q, got %q", "API Guide", doc.Title)
	}
	if !strings.Contains(doc.Body, "body text here") {
		t.Errorf("Load() Failed, body missing content: %q", doc.Body)
	}
	if !strings.HasPrefix(doc.Text(), "API Guide\n") {
		t.Errorf("Text() Failed, title not prepended: %q", doc.Text())
	}
}

func TestLoadMarkdownWithoutFrontmatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.md")
	writeFile(t, path, "just some text")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() Failed: %v", err)
	}
	if doc.Title != "" {
		t.Errorf("Load() Failed, expected empty title, got %q", doc.Title)
	}
	if doc.Text() != "just some text" {
		t.Errorf("Text() Failed, got %q", doc.Text())
	}
}

func TestLoadHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	writeFile(t, path, "<html><body><p>hello page</p></body></html>")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() Failed: %v", err)
	}
	if !strings.Contains(doc.Body, "hello page") {
		t.Errorf("Load() Failed, html text missing: %q", doc.Body)
	}
	if strings.Contains(doc.Body, "<") {
		t.Errorf("Load() Failed, markup leaked: %q", doc.Body)
	}
}
