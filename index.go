package ristorante

import (
	"fmt"
	"sort"
)

// Vocabulary maps normalized terms to token ids and back. Ids are unique
// but need not be contiguous.
type Vocabulary struct {
	ids   map[string]TokenID
	terms map[TokenID]string
	next  TokenID
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		ids:   make(map[string]TokenID),
		terms: make(map[TokenID]string),
	}
}

// Add returns the id of term, assigning the next free id on first sight.
func (v *Vocabulary) Add(term string) TokenID {
	if id, ok := v.ids[term]; ok {
		return id
	}
	id := v.next
	v.ids[term] = id
	v.terms[id] = term
	v.next++
	return id
}

// Put registers a token with a known id, as read back from storage.
func (v *Vocabulary) Put(token Token) error {
	if id, ok := v.ids[token.Term]; ok && id != token.ID {
		return fmt.Errorf("term %q has ids %d and %d: %w", token.Term, id, token.ID, ErrIndexCorrupted)
	}
	if term, ok := v.terms[token.ID]; ok && term != token.Term {
		return fmt.Errorf("id %d has terms %q and %q: %w", token.ID, term, token.Term, ErrIndexCorrupted)
	}
	v.ids[token.Term] = token.ID
	v.terms[token.ID] = token.Term
	if token.ID >= v.next {
		v.next = token.ID + 1
	}
	return nil
}

func (v *Vocabulary) Lookup(term string) (TokenID, bool) {
	id, ok := v.ids[term]
	return id, ok
}

func (v *Vocabulary) Term(id TokenID) (string, bool) {
	term, ok := v.terms[id]
	return term, ok
}

func (v *Vocabulary) Size() int {
	return len(v.ids)
}

// Tokens returns every entry ordered by id.
func (v *Vocabulary) Tokens() []Token {
	tokens := make([]Token, 0, len(v.terms))
	for id, term := range v.terms {
		tokens = append(tokens, NewToken(term, setID(id)))
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].ID < tokens[j].ID })
	return tokens
}

// BooleanIndex is an inverted index from token id to the documents that
// contain the token. Lists are kept ascending and free of duplicates.
type BooleanIndex map[TokenID][]DocumentID

// Add appends docID to the list of id. Documents must be added in ascending order.
func (idx BooleanIndex) Add(id TokenID, docID DocumentID) {
	ids := idx[id]
	if len(ids) > 0 && ids[len(ids)-1] == docID {
		// Don't add same ID twice.
		return
	}
	idx[id] = append(ids, docID)
}

// Put replaces the list of id with docIDs in any order.
func (idx BooleanIndex) Put(id TokenID, docIDs []DocumentID) {
	sorted := make([]DocumentID, len(docIDs))
	copy(sorted, docIDs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	r := sorted[:0]
	for i, d := range sorted {
		if i > 0 && d == sorted[i-1] {
			continue
		}
		r = append(r, d)
	}
	idx[id] = r
}

func (idx BooleanIndex) Postings(id TokenID) []DocumentID {
	return idx[id]
}

type WeightedPosting struct {
	DocumentID DocumentID `db:"document_id"`
	Weight     float64    `db:"weight"`
}

// WeightedIndex maps a term to one tf-idf posting per document containing
// it. Posting order is not significant.
type WeightedIndex map[string][]WeightedPosting

func (idx WeightedIndex) Lookup(term string) ([]WeightedPosting, bool) {
	postings, ok := idx[term]
	return postings, ok
}

// Weight returns the weight of term in docID.
func (idx WeightedIndex) Weight(term string, docID DocumentID) (float64, bool) {
	for _, p := range idx[term] {
		if p.DocumentID == docID {
			return p.Weight, true
		}
	}
	return 0, false
}
