package ristorante

import "strings"

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// WhitespaceTokenizer splits on runs of whitespace only, so underscores and
// digits glued to letters survive as one token.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() WhitespaceTokenizer {
	return WhitespaceTokenizer{}
}

func (t WhitespaceTokenizer) Tokenize(s string) TokenStream {
	return termsToStream(strings.Fields(s))
}

func termsToStream(terms []string) TokenStream {
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}
