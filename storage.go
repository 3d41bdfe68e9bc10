package ristorante

import (
	"fmt"
	"sort"
)

//go:generate mockgen -source=storage.go -destination=mock_storage_test.go -package=ristorante

// Storage persists the tables a snapshot is built from: documents, the
// vocabulary, boolean postings and weighted postings.
type Storage interface {
	CountDocuments() (int, error)             // number of stored documents
	GetAllDocuments() ([]Document, error)     // every document, ordered by id
	GetTokens() ([]Token, error)              // the vocabulary table
	GetBooleanIndex() (BooleanIndex, error)   // token id -> document ids
	GetWeightedIndex() (WeightedIndex, error) // term -> (document id, tf-idf)
	SaveSnapshot(*Snapshot) error             // replaces every table
}

// LoadSnapshot reads every table from storage and assembles a validated
// snapshot. Documents must be stored under ids 0..n-1.
func LoadSnapshot(storage Storage) (*Snapshot, error) {
	docs, err := storage.GetAllDocuments()
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	for i, doc := range docs {
		if doc.ID != DocumentID(i) {
			return nil, fmt.Errorf("document at position %d has id %d: %w", i, doc.ID, ErrIndexCorrupted)
		}
	}

	tokens, err := storage.GetTokens()
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	vocabulary := NewVocabulary()
	for _, token := range tokens {
		if err := vocabulary.Put(token); err != nil {
			return nil, err
		}
	}

	booleanIndex, err := storage.GetBooleanIndex()
	if err != nil {
		return nil, fmt.Errorf("load boolean index: %w", err)
	}
	weightedIndex, err := storage.GetWeightedIndex()
	if err != nil {
		return nil, fmt.Errorf("load weighted index: %w", err)
	}
	return NewSnapshot(vocabulary, booleanIndex, weightedIndex, NewMemoryDocumentStore(docs))
}
