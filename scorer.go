package ristorante

import "strings"

type ScoreWeights struct {
	Description float64 `yaml:"description"`
	Cuisine     float64 `yaml:"cuisine"`
	Facilities  float64 `yaml:"facilities"`
	Price       float64 `yaml:"price"`
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Description: 0.2,
		Cuisine:     0.3,
		Facilities:  0.3,
		Price:       0.2,
	}
}

// Scorer blends description similarity with cuisine, facility and price
// signals. Scores are unnormalized and only comparable within one query.
type Scorer struct {
	weights ScoreWeights
}

func NewScorer(weights ScoreWeights) Scorer {
	return Scorer{weights: weights}
}

func (s Scorer) Score(doc Document, terms []string, similarity float64) float64 {
	return s.weights.Description*similarity +
		s.weights.Cuisine*float64(cuisineMatches(doc, terms)) +
		s.weights.Facilities*float64(facilityMatches(doc, terms)) +
		s.weights.Price*priceScore(doc)
}

// cuisineMatches counts (tag, term) pairs where term occurs inside tag.
func cuisineMatches(doc Document, terms []string) int {
	var count int
	for _, cuisine := range strings.Split(strings.ToLower(doc.CuisineType), ",") {
		cuisine = strings.TrimSpace(cuisine)
		for _, term := range terms {
			if term != "" && strings.Contains(cuisine, term) {
				count++
			}
		}
	}
	return count
}

func facilityMatches(doc Document, terms []string) int {
	if len(doc.FacilitiesServices) == 0 {
		return 0
	}
	facilities := strings.ToLower(strings.Join(doc.FacilitiesServices, ", "))
	var count int
	for _, term := range terms {
		if term != "" && strings.Contains(facilities, term) {
			count++
		}
	}
	return count
}

// priceScore favours cheaper places: 1 - tier/4, or 0 without a price range.
func priceScore(doc Document) float64 {
	if doc.PriceRange == "" {
		return 0
	}
	return 1 - float64(doc.PriceTier())/4
}
