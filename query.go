package ristorante

// Queries carry raw text and normalize it with the same Normalizer used at
// build time before handing the terms to a searcher.

type queryText struct {
	text       string
	normalizer Normalizer
}

// Terms is the normalized query as it is matched against the indexes.
func (q queryText) Terms() []string {
	return q.normalizer.Terms(q.text)
}

type ConjunctiveQuery struct {
	queryText
}

func NewConjunctiveQuery(text string, normalizer Normalizer) *ConjunctiveQuery {
	return &ConjunctiveQuery{queryText{text: text, normalizer: normalizer}}
}

func (q *ConjunctiveQuery) Searcher(snapshot *Snapshot, options ...SearcherOption) ConjunctiveSearcher {
	return NewConjunctiveSearcher(q.Terms(), snapshot, options...)
}

type RankedQuery struct {
	queryText
	k int
}

func NewRankedQuery(text string, k int, normalizer Normalizer) *RankedQuery {
	return &RankedQuery{
		queryText: queryText{text: text, normalizer: normalizer},
		k:         k,
	}
}

func (q *RankedQuery) Searcher(snapshot *Snapshot, options ...SearcherOption) RankedSearcher {
	return NewRankedSearcher(q.Terms(), q.k, snapshot, options...)
}

type CompositeQuery struct {
	queryText
	k      int
	scorer Scorer
}

func NewCompositeQuery(text string, k int, normalizer Normalizer, scorer Scorer) *CompositeQuery {
	return &CompositeQuery{
		queryText: queryText{text: text, normalizer: normalizer},
		k:         k,
		scorer:    scorer,
	}
}

func (q *CompositeQuery) Searcher(snapshot *Snapshot, options ...SearcherOption) CompositeSearcher {
	return NewCompositeSearcher(q.Terms(), q.k, q.scorer, snapshot, options...)
}
