package ristorante

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyze(t *testing.T) {
	cases := []struct {
		analyzer Analyzer
		text     string
		tokens   TokenStream
	}{
		{
			analyzer: NewAnalyzer([]CharFilter{}, WhitespaceTokenizer{}, []TokenFilter{}),
			text:     "",
			tokens:   NewTokenStream([]Token{}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{PunctuationCharFilter{}}, WhitespaceTokenizer{}, []TokenFilter{}),
			text:     "small wild, cat!",
			tokens: NewTokenStream([]Token{
				NewToken("small"),
				NewToken("wild"),
				NewToken("cat"),
			}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{}, WhitespaceTokenizer{}, []TokenFilter{LowercaseFilter{}}),
			text:     "I am  BIG",
			tokens: NewTokenStream([]Token{
				NewToken("i"),
				NewToken("am"),
				NewToken("big"),
			}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{}, WhitespaceTokenizer{}, []TokenFilter{NewStopWordFilter(EnglishStopWords)}),
			text:     "how a Big",
			tokens: NewTokenStream([]Token{
				NewToken("Big"),
			}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{}, WhitespaceTokenizer{}, []TokenFilter{StemmerFilter{}}),
			text:     "Long pens",
			tokens: NewTokenStream([]Token{
				NewToken("long"),
				NewToken("pen"),
			}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{NewMappingCharFilter(map[string]string{"-": " "}), PunctuationCharFilter{}}, WhitespaceTokenizer{}, []TokenFilter{}),
			text:     "owner-chef's table_d'hote!",
			tokens: NewTokenStream([]Token{
				NewToken("owner"),
				NewToken("chefs"),
				NewToken("table_dhote"),
			}),
		},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v", tt.text), func(t *testing.T) {
			if diff := cmp.Diff(tt.analyzer.Analyze(tt.text), tt.tokens); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestEnglishNormalizer(t *testing.T) {
	normalizer := NewEnglishNormalizer()
	cases := []struct {
		text     string
		expected string
	}{
		{text: "", expected: ""},
		{text: "   ", expected: ""},
		{text: "The Michelin-starred chef cooks pasta!", expected: "michelin star chef cook pasta"},
		{text: "Long   PENS, and the cat.", expected: "long pen cat"},
		{text: "the and of", expected: ""},
		{text: "ares", expected: ""},
		{text: "dids", expected: ""},
		{text: "ons", expected: ""},
		{text: "haves", expected: ""},
		{text: "Pasta ares wines", expected: "pasta wine"},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v", tt.text), func(t *testing.T) {
			got := normalizer.Normalize(tt.text)
			if diff := cmp.Diff(got, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
			// normalizing twice changes nothing
			if diff := cmp.Diff(normalizer.Normalize(got), got); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestNormalizerTerms(t *testing.T) {
	normalizer := NewEnglishNormalizer()
	got := normalizer.Terms("Pasta, pasta and PENS")
	if diff := cmp.Diff(got, []string{"pasta", "pasta", "pen"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
