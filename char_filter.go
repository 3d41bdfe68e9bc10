package ristorante

import (
	"strings"
	"unicode"
)

type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	mapper map[string]string // key -> value
}

func NewMappingCharFilter(mapper map[string]string) MappingCharFilter {
	return MappingCharFilter{mapper: mapper}
}

func (c MappingCharFilter) Filter(s string) string {
	for k, v := range c.mapper {
		s = strings.ReplaceAll(s, k, v)
	}
	return s
}

// PunctuationCharFilter drops every rune that is not a letter, a digit,
// an underscore or whitespace.
type PunctuationCharFilter struct{}

func NewPunctuationCharFilter() PunctuationCharFilter {
	return PunctuationCharFilter{}
}

func (c PunctuationCharFilter) Filter(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			return r
		}
		return -1
	}, s)
}
