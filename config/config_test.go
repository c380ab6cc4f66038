package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadStopwords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords_en.txt")
	content := "the\n  and  \n\nof\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	stopwords, err := LoadStopwords(path)
	if err != nil {
		t.Fatalf("LoadStopwords() Failed: %v", err)
	}

	expected := map[string]struct{}{"the": {}, "and": {}, "of": {}}
	if !reflect.DeepEqual(stopwords, expected) {
		t.Errorf("LoadStopwords() Failed, expected %v, got %v", expected, stopwords)
	}
}

func TestLoadStopwordsMissingFile(t *testing.T) {
	stopwords, err := LoadStopwords(filepath.Join(t.TempDir(), "does_not_exist.txt"))
	if err != nil {
		t.Fatalf("LoadStopwords() Failed on missing file: %v", err)
	}
	if len(stopwords) != 0 {
		t.Errorf("LoadStopwords() expected empty set, got %v", stopwords)
	}
}

func TestLoadNormalizeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "normalize.json")
	content := `{"en": {"api": "API", "github": "GitHub"}, "ja": {"サーバ": "サーバー"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNormalizeConfig(path)
	if err != nil {
		t.Fatalf("LoadNormalizeConfig() Failed: %v", err)
	}
	if cfg.EN["api"] != "API" || cfg.EN["github"] != "GitHub" {
		t.Errorf("LoadNormalizeConfig() wrong en map: %v", cfg.EN)
	}
	if cfg.JA["サーバ"] != "サーバー" {
		t.Errorf("LoadNormalizeConfig() wrong ja map: %v", cfg.JA)
	}
}

func TestLoadNormalizeConfigMissingFile(t *testing.T) {
	cfg, err := LoadNormalizeConfig(filepath.Join(t.TempDir(), "does_not_exist.json"))
	if err != nil {
		t.Fatalf("LoadNormalizeConfig() Failed on missing file: %v", err)
	}
	if len(cfg.EN) != 0 || len(cfg.JA) != 0 {
		t.Errorf("LoadNormalizeConfig() expected empty maps, got %v", cfg)
	}
}

func TestLoadNormalizeConfigPartialKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "normalize.json")
	if err := os.WriteFile(path, []byte(`{"en": {"api": "API"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNormalizeConfig(path)
	if err != nil {
		t.Fatalf("LoadNormalizeConfig() Failed: %v", err)
	}
	if cfg.JA == nil {
		t.Error("LoadNormalizeConfig() returned nil ja map")
	}
}
