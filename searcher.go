package ristorante

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

const DefaultLimit = 10

type SearcherOption func(*searcherConfig)

type searcherConfig struct {
	logger *zap.Logger
}

func WithSearcherLogger(logger *zap.Logger) SearcherOption {
	return func(c *searcherConfig) {
		c.logger = logger
	}
}

func newSearcherConfig(options []SearcherOption) searcherConfig {
	c := searcherConfig{logger: zap.NewNop()}
	for _, option := range options {
		option(&c)
	}
	return c
}

// ConjunctiveSearcher returns the documents containing every query term the
// vocabulary knows. Unknown terms are ignored.
type ConjunctiveSearcher struct {
	terms    []string
	snapshot *Snapshot
	logger   *zap.Logger
}

func NewConjunctiveSearcher(terms []string, snapshot *Snapshot, options ...SearcherOption) ConjunctiveSearcher {
	c := newSearcherConfig(options)
	return ConjunctiveSearcher{
		terms:    terms,
		snapshot: snapshot,
		logger:   c.logger,
	}
}

// Search
// 1. deduplicate the terms and resolve them to token ids
// 2. fetch the posting list of each resolved token
// 3. intersect the lists, shortest first
// 4. return the documents in ascending id order
func (cs ConjunctiveSearcher) Search() ([]Document, error) {
	seen := make(map[string]struct{}, len(cs.terms))
	lists := make([][]DocumentID, 0, len(cs.terms))
	for _, term := range cs.terms {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		id, ok := cs.snapshot.Vocabulary.Lookup(term)
		if !ok {
			continue
		}
		lists = append(lists, cs.snapshot.BooleanIndex.Postings(id))
	}
	if len(lists) == 0 {
		cs.logger.Info("no query term found in vocabulary", zap.Strings("terms", cs.terms))
		return []Document{}, nil
	}

	sort.SliceStable(lists, func(i, j int) bool { return len(lists[i]) < len(lists[j]) })
	matched := lists[0]
	for _, list := range lists[1:] {
		if len(matched) == 0 {
			break
		}
		matched = intersection(matched, list)
	}

	if len(matched) == 0 {
		cs.logger.Info("no documents matched query", zap.Strings("terms", cs.terms))
		return []Document{}, nil
	}
	return cs.snapshot.Documents.GetDocuments(matched)
}

// intersection returns the set intersection between a and b.
// a and b have to be sorted in ascending order and contain no duplicates.
func intersection(a, b []DocumentID) []DocumentID {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	r := make([]DocumentID, 0, minLen)
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			i++
		} else if a[i] > b[j] {
			j++
		} else {
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}

// RankedSearcher ranks every document by cosine similarity to the query and
// keeps the top k.
//
// The query vector is keyed by document: each query term adds the weight of
// each of its postings to the posting's document. Repeated terms count again.
type RankedSearcher struct {
	terms    []string
	k        int
	snapshot *Snapshot
	logger   *zap.Logger
}

func NewRankedSearcher(terms []string, k int, snapshot *Snapshot, options ...SearcherOption) RankedSearcher {
	c := newSearcherConfig(options)
	return RankedSearcher{
		terms:    terms,
		k:        k,
		snapshot: snapshot,
		logger:   c.logger,
	}
}

func (rs RankedSearcher) Search() ([]ScoredDocument, error) {
	if rs.k < 0 {
		return nil, fmt.Errorf("k = %d: %w", rs.k, ErrInvalidLimit)
	}
	if rs.k == 0 {
		return []ScoredDocument{}, nil
	}

	queryVector := SparseVector[DocumentID]{}
	for _, term := range rs.terms {
		postings, ok := rs.snapshot.WeightedIndex.Lookup(term)
		if !ok {
			continue
		}
		for _, p := range postings {
			queryVector.Add(p.DocumentID, p.Weight)
		}
	}
	queryMagnitude := queryVector.Magnitude()

	scores := make(documentScores, len(rs.snapshot.documentVectors))
	for i, documentVector := range rs.snapshot.documentVectors {
		scores[i] = documentScore{
			id:    DocumentID(i),
			score: cosine(Dot(queryVector, documentVector), queryMagnitude, documentVector.Magnitude()),
		}
	}
	if queryMagnitude == 0 {
		rs.logger.Debug("query vector has no weight", zap.Strings("terms", rs.terms))
	}

	top := scores.top(rs.k)
	results := make([]ScoredDocument, len(top))
	for i, s := range top {
		doc, err := rs.snapshot.Documents.Get(s.id)
		if err != nil {
			return nil, err
		}
		results[i] = ScoredDocument{Document: doc, Similarity: s.score}
	}
	return results, nil
}

// CompositeSearcher takes the conjunctive matches, scores each one with the
// Scorer on top of its pairwise description similarity and keeps the top k
// by that score.
type CompositeSearcher struct {
	terms    []string
	k        int
	scorer   Scorer
	snapshot *Snapshot
	logger   *zap.Logger
}

func NewCompositeSearcher(terms []string, k int, scorer Scorer, snapshot *Snapshot, options ...SearcherOption) CompositeSearcher {
	c := newSearcherConfig(options)
	return CompositeSearcher{
		terms:    terms,
		k:        k,
		scorer:   scorer,
		snapshot: snapshot,
		logger:   c.logger,
	}
}

func (cs CompositeSearcher) Search() ([]ScoredDocument, error) {
	if cs.k < 0 {
		return nil, fmt.Errorf("k = %d: %w", cs.k, ErrInvalidLimit)
	}
	candidates, err := NewConjunctiveSearcher(cs.terms, cs.snapshot, WithSearcherLogger(cs.logger)).Search()
	if err != nil {
		return nil, err
	}

	hits := make(map[DocumentID]ScoredDocument, len(candidates))
	scores := make(documentScores, len(candidates))
	for i, doc := range candidates {
		similarity := PairwiseSimilarity(cs.snapshot.WeightedIndex, doc.ID, doc.NormalizedDescription, cs.terms)
		score := cs.scorer.Score(doc, cs.terms, similarity)
		hits[doc.ID] = ScoredDocument{Document: doc, Similarity: similarity, Score: &score}
		scores[i] = documentScore{id: doc.ID, score: score}
	}

	top := scores.top(cs.k)
	results := make([]ScoredDocument, len(top))
	for i, s := range top {
		results[i] = hits[s.id]
	}
	return results, nil
}
