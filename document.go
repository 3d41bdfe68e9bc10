package ristorante

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type DocumentID int

// Document is one restaurant record. ID equals the record's position in the
// DocumentStore and is the only key the indexes hold.
type Document struct {
	ID                    DocumentID `db:"id" json:"id"`
	Name                  string     `db:"name" json:"restaurantName"`
	Address               string     `db:"address" json:"address"`
	City                  string     `db:"city" json:"city"`
	PostalCode            string     `db:"postal_code" json:"postalCode"`
	Country               string     `db:"country" json:"country"`
	PriceRange            string     `db:"price_range" json:"priceRange"`
	CuisineType           string     `db:"cuisine_type" json:"cuisineType"`
	Description           string     `db:"description" json:"description"`
	NormalizedDescription string     `db:"normalized_description" json:"descriptionCleaned"`
	FacilitiesServices    StringSet  `db:"facilities_services" json:"facilitiesServices"`
	CreditCards           StringSet  `db:"credit_cards" json:"creditCards"`
	PhoneNumber           string     `db:"phone_number" json:"phoneNumber"`
	Website               string     `db:"website" json:"website"`
}

const currencySymbol = "€"

// PriceTier is the number of currency symbols in PriceRange; 0 when unknown.
func (d Document) PriceTier() int {
	return strings.Count(d.PriceRange, currencySymbol)
}

// StringSet is an ordered set of tags. It is stored as a JSON array column.
type StringSet []string

func NewStringSet(values ...string) StringSet {
	seen := make(map[string]struct{}, len(values))
	s := make(StringSet, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		s = append(s, v)
	}
	return s
}

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSet) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*s = StringSet{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("scan StringSet: unsupported type %T", src)
	}
	var values []string
	if err := json.Unmarshal(b, &values); err != nil {
		return err
	}
	*s = NewStringSet(values...)
	return nil
}

type DocumentStore interface {
	Len() int
	Get(DocumentID) (Document, error)
	GetDocuments([]DocumentID) ([]Document, error)
	All() []Document
}

// MemoryDocumentStore keeps records in a slice addressed by position.
type MemoryDocumentStore struct {
	docs []Document
}

// NewMemoryDocumentStore copies docs and rewrites each ID to its position.
func NewMemoryDocumentStore(docs []Document) *MemoryDocumentStore {
	copied := make([]Document, len(docs))
	for i, doc := range docs {
		doc.ID = DocumentID(i)
		copied[i] = doc
	}
	return &MemoryDocumentStore{docs: copied}
}

func (s *MemoryDocumentStore) Len() int {
	return len(s.docs)
}

func (s *MemoryDocumentStore) Get(id DocumentID) (Document, error) {
	if id < 0 || int(id) >= len(s.docs) {
		return Document{}, fmt.Errorf("document %d: %w", id, ErrDocumentNotFound)
	}
	return s.docs[id], nil
}

// GetDocuments returns the records in the order of ids.
func (s *MemoryDocumentStore) GetDocuments(ids []DocumentID) ([]Document, error) {
	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *MemoryDocumentStore) All() []Document {
	docs := make([]Document, len(s.docs))
	copy(docs, s.docs)
	return docs
}
