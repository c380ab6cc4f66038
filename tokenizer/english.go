package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EnglishTokenizer extracts English tokens from sanitized text. Tokens are
// case normalized, checked against the stopword set and dropped when too
// short. A one-shot sequence: call Next until it reports false.
type EnglishTokenizer struct {
	lexer     *Lexer
	stopwords map[string]struct{}
	normalize map[string]string
	stemmer   Stemmer
}

// NewEnglishTokenizer creates a new EnglishTokenizer. The stemmer may be nil
// to leave word forms untouched, which is the default behaviour.
func NewEnglishTokenizer(text string, stopwords map[string]struct{}, normalize map[string]string, stemmer Stemmer) *EnglishTokenizer {
	return &EnglishTokenizer{
		lexer:     NewLexer(text),
		stopwords: stopwords,
		normalize: normalize,
		stemmer:   stemmer,
	}
}

// Next returns the next surviving token. The second return value is false
// once the text is exhausted.
func (t *EnglishTokenizer) Next() (string, bool) {
	for {
		match, ok := t.lexer.NextToken()
		if !ok {
			return "", false
		}

		token := NormalizeCase(match, t.normalize)

		// Stopwords match case-insensitively no matter which casing
		// path the token took.
		if _, stop := t.stopwords[strings.ToLower(token)]; stop {
			continue
		}
		if utf8.RuneCountInString(token) <= 2 && !containsDigit(token) {
			continue
		}

		// Acronyms and override display forms are never stemmed.
		if t.stemmer != nil && token == strings.ToLower(token) {
			token = t.stemmer.Stem(token)
		}
		return token, true
	}
}

// NormalizeCase lowercases a token unless the normalization map carries an
// override for the lowercased form, or the token is entirely uppercase and
// therefore treated as an acronym.
func NormalizeCase(token string, normalize map[string]string) string {
	lowered := strings.ToLower(token)
	if display, ok := normalize[lowered]; ok {
		return display
	}
	if isAllUpper(token) {
		return token
	}
	return lowered
}

// isAllUpper reports whether the token has at least one cased rune and no
// lowercase runes.
func isAllUpper(token string) bool {
	hasCased := false
	for _, r := range token {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func containsDigit(token string) bool {
	for _, r := range token {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
