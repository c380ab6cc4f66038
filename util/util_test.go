package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	v := []map[string]interface{}{{"token": "api", "count": 3}}

	if err := WriteJSON(path, v); err != nil {
		t.Fatalf("WriteJSON() Failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"token": "api"`) {
		t.Errorf("WriteJSON() Failed, got %q", string(data))
	}
}
