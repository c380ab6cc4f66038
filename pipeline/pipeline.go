package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/deanrtaylor1/gowordcloud/config"
	"github.com/deanrtaylor1/gowordcloud/corpus"
	"github.com/deanrtaylor1/gowordcloud/freq"
	"github.com/deanrtaylor1/gowordcloud/sanitizer"
	"github.com/deanrtaylor1/gowordcloud/tokenizer"
)

// ErrNoTokens is returned when the whole corpus yields no tokens at all.
var ErrNoTokens = errors.New("no tokens were extracted from the target directory")

// Pipeline runs each document through sanitize, both tokenizers and the
// shared counter, strictly in path order. One bad document fails the run;
// there is no skip-and-continue.
type Pipeline struct {
	segmenter   tokenizer.Segmenter
	stopwordsJA map[string]struct{}
	stopwordsEN map[string]struct{}
	normalize   config.NormalizeConfig
	stemmer     tokenizer.Stemmer
	log         *zap.SugaredLogger
}

// New creates a new Pipeline. The stemmer may be nil.
func New(segmenter tokenizer.Segmenter, stopwordsJA, stopwordsEN map[string]struct{}, normalize config.NormalizeConfig, stemmer tokenizer.Stemmer, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{
		segmenter:   segmenter,
		stopwordsJA: stopwordsJA,
		stopwordsEN: stopwordsEN,
		normalize:   normalize,
		stemmer:     stemmer,
		log:         log,
	}
}

// CollectTokens walks the target directory and accumulates every surviving
// token into a single corpus-wide counter.
func (p *Pipeline) CollectTokens(target string) (*freq.Counter, error) {
	paths, err := corpus.Walk(target)
	if err != nil {
		return nil, err
	}
	p.log.Infow("scanning documents", "target", target, "files", len(paths))

	counter := freq.NewCounter()
	for _, path := range paths {
		doc, err := corpus.Load(path)
		if err != nil {
			return nil, err
		}
		p.countDocument(doc, counter)
	}

	if counter.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTokens, target)
	}
	p.log.Infow("finished scanning", "documents", len(paths), "distinct_tokens", counter.Len())
	return counter, nil
}

// countDocument sanitizes one document and drains both tokenizers into the
// counter, Japanese first to match the per-document emission order.
func (p *Pipeline) countDocument(doc corpus.Document, counter *freq.Counter) {
	text := sanitizer.Sanitize(doc.Text())

	ja := tokenizer.NewJapaneseTokenizer(p.segmenter, text, p.stopwordsJA, p.normalize.JA)
	for {
		token, ok := ja.Next()
		if !ok {
			break
		}
		counter.Add(token)
	}

	en := tokenizer.NewEnglishTokenizer(text, p.stopwordsEN, p.normalize.EN, p.stemmer)
	for {
		token, ok := en.Next()
		if !ok {
			break
		}
		counter.Add(token)
	}

	p.log.Debugw("tokenized document", "path", doc.Path)
}

// Run collects tokens, folds cross-document case variants and returns the
// top k entries by descending count.
func (p *Pipeline) Run(target string, k int) ([]freq.Entry, error) {
	counter, err := p.CollectTokens(target)
	if err != nil {
		return nil, err
	}
	normalized := freq.Normalize(counter, p.normalize.EN)
	return normalized.TopK(k), nil
}
