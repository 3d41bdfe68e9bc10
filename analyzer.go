package ristorante

import "strings"

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}

// Normalizer turns free text into the term sequence stored in the indexes.
// The same value must be used for descriptions at build time and for
// queries at search time.
type Normalizer struct {
	analyzer Analyzer
}

func NewNormalizer(analyzer Analyzer) Normalizer {
	return Normalizer{analyzer: analyzer}
}

// NewEnglishNormalizer: hyphens to spaces, punctuation removed, lowercased,
// whitespace tokenized, English stopwords removed, snowball stemmed.
// Stopwords are dropped again after stemming ("ares" stems to "are") so
// that normalized text normalizes to itself.
func NewEnglishNormalizer() Normalizer {
	return NewNormalizer(NewAnalyzer(
		[]CharFilter{
			NewMappingCharFilter(map[string]string{"-": " "}),
			NewPunctuationCharFilter(),
		},
		NewWhitespaceTokenizer(),
		[]TokenFilter{
			NewLowercaseFilter(),
			NewStopWordFilter(EnglishStopWords),
			NewStemmerFilter(),
			NewStopWordFilter(EnglishStopWords),
		},
	))
}

func (n Normalizer) Terms(text string) []string {
	return n.analyzer.Analyze(text).Terms()
}

func (n Normalizer) Normalize(text string) string {
	return strings.Join(n.Terms(text), " ")
}
