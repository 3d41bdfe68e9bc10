package ristorante

import (
	"math"
	"strings"

	"go.uber.org/zap"
)

type TfVariant int

const (
	// TfRaw weighs a term by its raw count in the description.
	TfRaw TfVariant = iota
	// TfLog weighs a term by 1 + ln(count).
	TfLog
)

func (v TfVariant) tf(count int) float64 {
	if v == TfLog {
		return 1 + math.Log(float64(count))
	}
	return float64(count)
}

type Indexer struct {
	Normalizer Normalizer
	TfVariant  TfVariant
	logger     *zap.Logger
}

type IndexerOption func(*Indexer)

func WithTfVariant(v TfVariant) IndexerOption {
	return func(i *Indexer) {
		i.TfVariant = v
	}
}

func WithIndexerLogger(logger *zap.Logger) IndexerOption {
	return func(i *Indexer) {
		i.logger = logger
	}
}

func NewIndexer(normalizer Normalizer, options ...IndexerOption) *Indexer {
	i := &Indexer{
		Normalizer: normalizer,
		TfVariant:  TfRaw,
		logger:     zap.NewNop(),
	}
	for _, option := range options {
		option(i)
	}
	return i
}

// Build indexes docs from scratch. Each document gets its position as ID
// and its description normalized unless it already carries one.
//
//	tfidf(term, doc) = tf(term, doc) * ln(N / df(term))
func (i *Indexer) Build(docs []Document) (*Snapshot, error) {
	prepared := make([]Document, len(docs))
	for pos, doc := range docs {
		doc.ID = DocumentID(pos)
		if doc.NormalizedDescription == "" {
			doc.NormalizedDescription = i.Normalizer.Normalize(doc.Description)
		}
		prepared[pos] = doc
	}
	store := NewMemoryDocumentStore(prepared)

	vocabulary := NewVocabulary()
	booleanIndex := make(BooleanIndex)
	documentFrequency := make(map[string]int)
	// per document: distinct terms in first-seen order and their counts
	termOrder := make([][]string, len(prepared))
	termCounts := make([]map[string]int, len(prepared))

	for pos, doc := range prepared {
		counts := make(map[string]int)
		for _, term := range strings.Fields(doc.NormalizedDescription) {
			if _, ok := counts[term]; !ok {
				termOrder[pos] = append(termOrder[pos], term)
				documentFrequency[term]++
			}
			counts[term]++
			booleanIndex.Add(vocabulary.Add(term), doc.ID)
		}
		termCounts[pos] = counts
	}

	n := float64(len(prepared))
	weightedIndex := make(WeightedIndex, len(documentFrequency))
	for pos := range prepared {
		for _, term := range termOrder[pos] {
			idf := math.Log(n / float64(documentFrequency[term]))
			weightedIndex[term] = append(weightedIndex[term], WeightedPosting{
				DocumentID: DocumentID(pos),
				Weight:     i.TfVariant.tf(termCounts[pos][term]) * idf,
			})
		}
	}

	i.logger.Info("index built",
		zap.Int("documents", len(prepared)),
		zap.Int("terms", vocabulary.Size()),
	)
	return NewSnapshot(vocabulary, booleanIndex, weightedIndex, store)
}
