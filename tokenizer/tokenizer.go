package tokenizer

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Morpheme is a single segmented unit of Japanese text. Lemma holds the
// dictionary base form and is "*" or empty when the analyzer has none.
type Morpheme struct {
	Surface string
	POS     string
	Lemma   string
}

// Segmenter splits text into morphemes. The Japanese tokenizer depends only
// on this interface so any analyzer backend can be swapped in.
type Segmenter interface {
	Segment(text string) []Morpheme
}

// Stemmer reduces an English word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// KagomeSegmenter is the kagome backed Segmenter using the IPA dictionary.
type KagomeSegmenter struct {
	t *tokenizer.Tokenizer
}

// NewKagomeSegmenter creates a new KagomeSegmenter
func NewKagomeSegmenter() (*KagomeSegmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeSegmenter{t: t}, nil
}

// Segment runs the morphological analysis and maps kagome tokens to
// morphemes. IPA dictionary features: index 0 is the part of speech, index 6
// is the base form.
func (k *KagomeSegmenter) Segment(text string) []Morpheme {
	var morphemes []Morpheme
	for _, token := range k.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}

		features := token.Features()
		pos := ""
		if len(features) > 0 {
			pos = features[0]
		}
		lemma := ""
		if len(features) > 6 {
			lemma = features[6]
		}

		morphemes = append(morphemes, Morpheme{
			Surface: token.Surface,
			POS:     pos,
			Lemma:   lemma,
		})
	}
	return morphemes
}
