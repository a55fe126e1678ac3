// Package nlp provides the tokenization and text similarity capability used
// by the job analyzer and the compatibility scorer.
//
// The analyzers only depend on the Tokenizer and Similarity interfaces. The
// Analyzer type in this package is the default implementation: word
// tokenization backed by prose, and a TF-IDF cosine similarity over English
// text with stop words removed.
package nlp

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/jonathan/resume-matcher/internal/logging"
)

// Tokenizer splits text into word-level tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Similarity scores how alike two texts are, in [0, 1].
type Similarity interface {
	Similarity(a, b string) (float64, error)
}

// TextAnalyzer is the full capability.
type TextAnalyzer interface {
	Tokenizer
	Similarity
}

// termPattern matches the terms counted by the vectorizer: runs of two or
// more word characters.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Analyzer is the default TextAnalyzer. The zero value is not usable; call
// NewAnalyzer.
type Analyzer struct {
	stopWords map[string]struct{}
}

// NewAnalyzer returns an Analyzer that drops the built-in English stop words
// when vectorizing.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithStopWords(EnglishStopWords())
}

// NewAnalyzerWithStopWords returns an Analyzer with a custom stop word list.
func NewAnalyzerWithStopWords(words []string) *Analyzer {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Analyzer{stopWords: set}
}

// Tokenize splits text into words with the prose tokenizer, splits list
// punctuation prose leaves inside a word ("python/django"), then trims
// surrounding punctuation. Hyphens, dots, '+' and '#' inside a token are
// kept, so "problem-solving", "node.js" and "c++" stay whole. Case is
// preserved.
func (a *Analyzer) Tokenize(text string) []string {
	tokens := make([]string, 0)

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		logging.L().Warn().Err(err).Msg("tokenization failed")
		return tokens
	}

	for _, word := range doc.Tokens() {
		for _, f := range strings.FieldsFunc(word.Text, isSeparator) {
			if tok := trimToken(f); tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

// trimToken drops leading and trailing punctuation, keeping a trailing '+'
// or '#'.
func trimToken(s string) string {
	s = strings.TrimLeftFunc(s, isTrimmable)
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r != '+' && r != '#' && isTrimmable(r)
	})
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case ',', ';', '/', '|', '(', ')', '[', ']', '{', '}', '"':
		return true
	}
	return false
}

func isTrimmable(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Similarity returns the cosine similarity of the TF-IDF vectors of a and b.
// Terms are fitted on the two documents only. It fails with a
// *ComputationError wrapping ErrEmptyVocabulary when neither text has a
// countable term.
func (a *Analyzer) Similarity(x, y string) (float64, error) {
	docs := [2]map[string]float64{a.termCounts(x), a.termCounts(y)}
	if len(docs[0]) == 0 && len(docs[1]) == 0 {
		return 0, &ComputationError{Message: "cannot vectorize documents", Cause: ErrEmptyVocabulary}
	}

	df := make(map[string]int, len(docs[0])+len(docs[1]))
	for _, d := range docs {
		for term := range d {
			df[term]++
		}
	}

	// Smoothed idf: ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	for _, d := range docs {
		for term, tf := range d {
			d[term] = tf * (math.Log((1+n)/(1+float64(df[term]))) + 1)
		}
	}

	normX, normY := norm(docs[0]), norm(docs[1])
	if normX == 0 || normY == 0 {
		return 0, nil
	}

	var dot float64
	for term, wx := range docs[0] {
		dot += wx * docs[1][term]
	}

	sim := dot / (normX * normY)
	return math.Max(0, math.Min(1, sim)), nil
}

func (a *Analyzer) termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, term := range termPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := a.stopWords[term]; stop {
			continue
		}
		counts[term]++
	}
	return counts
}

func norm(v map[string]float64) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
