package ristorante

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Snapshot is one immutable build of the corpus: vocabulary, both indexes
// and the document store. It is safe for concurrent readers.
type Snapshot struct {
	Vocabulary    *Vocabulary
	BooleanIndex  BooleanIndex
	WeightedIndex WeightedIndex
	Documents     DocumentStore

	documentVectors []SparseVector[DocumentID]
}

// NewSnapshot checks that every posting points at a stored document and that
// boolean postings are strictly ascending, then precomputes the per-document
// vectors used by ranked search. Use BooleanIndex.Put for unordered lists.
func NewSnapshot(vocabulary *Vocabulary, booleanIndex BooleanIndex, weightedIndex WeightedIndex, documents DocumentStore) (*Snapshot, error) {
	n := documents.Len()
	for id, docIDs := range booleanIndex {
		if _, ok := vocabulary.Term(id); !ok {
			return nil, fmt.Errorf("boolean postings for unknown token %d: %w", id, ErrIndexCorrupted)
		}
		for i, docID := range docIDs {
			if docID < 0 || int(docID) >= n {
				return nil, fmt.Errorf("token %d references document %d: %w", id, docID, ErrDocumentNotFound)
			}
			if i > 0 && docIDs[i-1] >= docID {
				return nil, fmt.Errorf("postings of token %d not strictly ascending at %d: %w", id, docID, ErrIndexCorrupted)
			}
		}
	}
	for term, postings := range weightedIndex {
		for _, p := range postings {
			if p.DocumentID < 0 || int(p.DocumentID) >= n {
				return nil, fmt.Errorf("term %q references document %d: %w", term, p.DocumentID, ErrDocumentNotFound)
			}
		}
	}

	s := &Snapshot{
		Vocabulary:    vocabulary,
		BooleanIndex:  booleanIndex,
		WeightedIndex: weightedIndex,
		Documents:     documents,
	}
	s.documentVectors = make([]SparseVector[DocumentID], n)
	for i, doc := range documents.All() {
		s.documentVectors[i] = s.documentVector(DocumentID(i), doc.NormalizedDescription)
	}
	return s, nil
}

// documentVector accumulates, for every term occurrence in the description,
// the document's own weight for that term.
func (s *Snapshot) documentVector(docID DocumentID, normalized string) SparseVector[DocumentID] {
	v := SparseVector[DocumentID]{}
	for _, term := range strings.Fields(normalized) {
		postings, ok := s.WeightedIndex.Lookup(term)
		if !ok {
			continue
		}
		for _, p := range postings {
			if p.DocumentID == docID {
				v.Add(docID, p.Weight)
			}
		}
	}
	return v
}

// Similarity is the cosine between one document's description and terms,
// with both vectors keyed by term and weighted only from that document's
// postings.
func (s *Snapshot) Similarity(docID DocumentID, terms []string) (float64, error) {
	doc, err := s.Documents.Get(docID)
	if err != nil {
		return 0, err
	}
	return PairwiseSimilarity(s.WeightedIndex, docID, doc.NormalizedDescription, terms), nil
}

func PairwiseSimilarity(idx WeightedIndex, docID DocumentID, normalized string, terms []string) float64 {
	documentVector := SparseVector[string]{}
	for _, term := range strings.Fields(normalized) {
		if w, ok := idx.Weight(term, docID); ok {
			documentVector.Set(term, w)
		}
	}
	queryVector := SparseVector[string]{}
	for _, term := range terms {
		if w, ok := idx.Weight(term, docID); ok {
			queryVector.Set(term, w)
		}
	}
	return Cosine(documentVector, queryVector)
}

// TermInfo describes one vocabulary term of a snapshot.
type TermInfo struct {
	ID                TokenID `json:"id"`
	Term              string  `json:"term"`
	DocumentFrequency int     `json:"documentFrequency"`
}

// Term looks up a normalized term. Unlike searches, an unknown term is an
// error wrapping ErrTermNotFound.
func (s *Snapshot) Term(term string) (TermInfo, error) {
	id, ok := s.Vocabulary.Lookup(term)
	if !ok {
		return TermInfo{}, fmt.Errorf("%q: %w", term, ErrTermNotFound)
	}
	return TermInfo{
		ID:                id,
		Term:              term,
		DocumentFrequency: len(s.BooleanIndex.Postings(id)),
	}, nil
}

// SnapshotHolder publishes snapshots to readers. A rebuilt snapshot replaces
// the old one in a single atomic store.
type SnapshotHolder struct {
	current atomic.Pointer[Snapshot]
}

func NewSnapshotHolder(s *Snapshot) *SnapshotHolder {
	h := &SnapshotHolder{}
	h.current.Store(s)
	return h
}

func (h *SnapshotHolder) Load() *Snapshot {
	return h.current.Load()
}

func (h *SnapshotHolder) Swap(s *Snapshot) *Snapshot {
	return h.current.Swap(s)
}
