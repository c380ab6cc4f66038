package tokenizer

import (
	"unicode/utf8"
)

// allowedPOS is the part of speech allow-list: nouns, adjectives and verbs.
// Particles, punctuation, auxiliary verbs and everything else are dropped.
var allowedPOS = map[string]struct{}{
	"名詞":  {},
	"形容詞": {},
	"動詞":  {},
}

// JapaneseTokenizer walks the morphemes of a text and yields base forms that
// survive the part of speech, stopword and length filters. A one-shot
// sequence: call Next until it reports false.
type JapaneseTokenizer struct {
	morphemes []Morpheme
	pos       int
	stopwords map[string]struct{}
	normalize map[string]string
}

// NewJapaneseTokenizer segments the text up front and creates a new
// JapaneseTokenizer over the result.
func NewJapaneseTokenizer(segmenter Segmenter, text string, stopwords map[string]struct{}, normalize map[string]string) *JapaneseTokenizer {
	return &JapaneseTokenizer{
		morphemes: segmenter.Segment(text),
		stopwords: stopwords,
		normalize: normalize,
	}
}

// Next returns the next surviving token. The second return value is false
// once the morphemes are exhausted.
func (t *JapaneseTokenizer) Next() (string, bool) {
	for t.pos < len(t.morphemes) {
		m := t.morphemes[t.pos]
		t.pos++

		if _, ok := allowedPOS[m.POS]; !ok {
			continue
		}

		base := m.Lemma
		if base == "" || base == "*" {
			base = m.Surface
		}
		// The analyzer sometimes over-normalizes a kanji compound into
		// a generic katakana reading; keep the surface form then.
		if isKatakana(base) && containsKanji(m.Surface) {
			base = m.Surface
		}
		if display, ok := t.normalize[base]; ok {
			base = display
		}

		if _, stop := t.stopwords[base]; stop {
			continue
		}
		if utf8.RuneCountInString(base) <= 1 {
			continue
		}
		return base, true
	}
	return "", false
}

// isKatakana reports whether the string is non-empty and purely katakana,
// including the long vowel mark.
func isKatakana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'ァ' && r <= 'ヴ') || r == 'ー') {
			return false
		}
	}
	return true
}

// containsKanji reports whether the string has at least one kanji rune.
func containsKanji(s string) bool {
	for _, r := range s {
		if r >= '一' && r <= '龯' {
			return true
		}
	}
	return false
}
