package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// NormalizeConfig maps a canonical lowercased or base form to a preferred
// display form, per language.
type NormalizeConfig struct {
	EN map[string]string `json:"en"`
	JA map[string]string `json:"ja"`
}

// LoadStopwords loads a stopword set from a file with one word per line.
// A missing file is not an error and yields an empty set.
func LoadStopwords(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf("error opening stopwords file %s: %w", path, err)
	}
	defer f.Close()

	stopwords := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			stopwords[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading stopwords file %s: %w", path, err)
	}
	return stopwords, nil
}

// LoadNormalizeConfig loads the case normalization rules from a JSON file
// with top-level "en" and "ja" keys. A missing file is not an error and
// yields empty maps.
func LoadNormalizeConfig(path string) (NormalizeConfig, error) {
	cfg := NormalizeConfig{
		EN: map[string]string{},
		JA: map[string]string{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error opening normalize config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing normalize config %s: %w", path, err)
	}
	if cfg.EN == nil {
		cfg.EN = map[string]string{}
	}
	if cfg.JA == nil {
		cfg.JA = map[string]string{}
	}
	return cfg, nil
}
