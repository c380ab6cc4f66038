package freq

import (
	"sort"

	"github.com/deanrtaylor1/gowordcloud/tokenizer"
)

// Entry is a single token with its corpus-wide occurrence count.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Counter accumulates token frequencies and remembers the order tokens were
// first seen. A plain map loses that order and with it the deterministic
// tie-break of TopK.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter creates a new Counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add counts one occurrence of the token.
func (c *Counter) Add(token string) {
	c.AddN(token, 1)
}

// AddN counts n occurrences of the token.
func (c *Counter) AddN(token string, n int) {
	if _, seen := c.counts[token]; !seen {
		c.order = append(c.order, token)
	}
	c.counts[token] += n
}

// Count returns the current count for a token.
func (c *Counter) Count(token string) int {
	return c.counts[token]
}

// Len returns the number of distinct tokens.
func (c *Counter) Len() int {
	return len(c.order)
}

// Entries returns all entries in first-seen order.
func (c *Counter) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, token := range c.order {
		entries = append(entries, Entry{Token: token, Count: c.counts[token]})
	}
	return entries
}

// TopK returns the k highest-count entries in descending count order. Ties
// keep first-seen order, so two runs over the same corpus produce the same
// ranking.
func (c *Counter) TopK(k int) []Entry {
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if k >= 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// Normalize runs the English case normalization once more over the whole
// aggregated table and merges the resulting keys. The same word can arrive
// with different casings from different documents ("API" in one post, "api"
// in another); this pass folds them before ranking. Keys without any ascii
// letter pass through unchanged.
func Normalize(c *Counter, normalizeEN map[string]string) *Counter {
	normalized := NewCounter()
	for _, entry := range c.Entries() {
		token := entry.Token
		if containsASCIILetter(token) {
			token = tokenizer.NormalizeCase(token, normalizeEN)
		}
		normalized.AddN(token, entry.Count)
	}
	return normalized
}

func containsASCIILetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
