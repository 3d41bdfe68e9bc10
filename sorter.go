package ristorante

import "sort"

// ScoredDocument is a search hit. Similarity is the cosine against the
// query; Score is the composite score, nil unless a Scorer ranked the hit.
type ScoredDocument struct {
	Document
	Similarity float64  `json:"similarity"`
	Score      *float64 `json:"score,omitempty"`
}

type documentScore struct {
	id    DocumentID
	score float64
}

type documentScores []documentScore

// Descending score, ascending id on ties.
func (ds documentScores) Len() int { return len(ds) }
func (ds documentScores) Less(i, j int) bool {
	if ds[i].score != ds[j].score {
		return ds[i].score > ds[j].score
	}
	return ds[i].id < ds[j].id
}
func (ds documentScores) Swap(i, j int) { ds[i], ds[j] = ds[j], ds[i] }

// top sorts ds and keeps at most k entries.
func (ds documentScores) top(k int) documentScores {
	sort.Sort(ds)
	if len(ds) > k {
		return ds[:k]
	}
	return ds
}
