package ristorante

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVocabulary(t *testing.T) {
	v := NewVocabulary()
	for _, term := range []string{"pasta", "wine", "pasta", "fish"} {
		v.Add(term)
	}

	cases := []struct {
		term string
		id   TokenID
		ok   bool
	}{
		{term: "pasta", id: 0, ok: true},
		{term: "wine", id: 1, ok: true},
		{term: "fish", id: 2, ok: true},
		{term: "sushi", id: 0, ok: false},
	}
	for _, tt := range cases {
		id, ok := v.Lookup(tt.term)
		if diff := cmp.Diff([]interface{}{id, ok}, []interface{}{tt.id, tt.ok}); diff != "" {
			t.Errorf("Diff: (-got +want)\n%s", diff)
		}
	}

	expected := []Token{{ID: 0, Term: "pasta"}, {ID: 1, Term: "wine"}, {ID: 2, Term: "fish"}}
	if diff := cmp.Diff(v.Tokens(), expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestVocabularyPut(t *testing.T) {
	v := NewVocabulary()
	if err := v.Put(Token{ID: 10, Term: "pasta"}); err != nil {
		t.Fatal(err)
	}
	if err := v.Put(Token{ID: 3, Term: "wine"}); err != nil {
		t.Fatal(err)
	}
	if got := v.Add("fish"); got != 11 {
		t.Errorf("Add() = %d, want 11", got)
	}
	if err := v.Put(Token{ID: 4, Term: "pasta"}); !errors.Is(err, ErrIndexCorrupted) {
		t.Errorf("Put() error = %v, want %v", err, ErrIndexCorrupted)
	}
	if err := v.Put(Token{ID: 3, Term: "sushi"}); !errors.Is(err, ErrIndexCorrupted) {
		t.Errorf("Put() error = %v, want %v", err, ErrIndexCorrupted)
	}
}

func TestBooleanIndex(t *testing.T) {
	idx := BooleanIndex{}
	idx.Add(1, 0)
	idx.Add(1, 0)
	idx.Add(1, 3)
	idx.Put(2, []DocumentID{5, 1, 5, 2})

	cases := []struct {
		id       TokenID
		expected []DocumentID
	}{
		{id: 1, expected: []DocumentID{0, 3}},
		{id: 2, expected: []DocumentID{1, 2, 5}},
		{id: 3, expected: nil},
	}
	for _, tt := range cases {
		if diff := cmp.Diff(idx.Postings(tt.id), tt.expected); diff != "" {
			t.Errorf("Diff: (-got +want)\n%s", diff)
		}
	}
}

func TestWeightedIndexWeight(t *testing.T) {
	idx := WeightedIndex{
		"pasta": {{DocumentID: 2, Weight: 0.5}, {DocumentID: 0, Weight: 1.5}},
	}
	cases := []struct {
		term   string
		docID  DocumentID
		weight float64
		ok     bool
	}{
		{term: "pasta", docID: 0, weight: 1.5, ok: true},
		{term: "pasta", docID: 2, weight: 0.5, ok: true},
		{term: "pasta", docID: 1, weight: 0, ok: false},
		{term: "wine", docID: 0, weight: 0, ok: false},
	}
	for _, tt := range cases {
		w, ok := idx.Weight(tt.term, tt.docID)
		if diff := cmp.Diff([]interface{}{w, ok}, []interface{}{tt.weight, tt.ok}); diff != "" {
			t.Errorf("Diff: (-got +want)\n%s", diff)
		}
	}
}
