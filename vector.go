package ristorante

import "math"

// SparseVector maps a dimension to a weight. Absent dimensions weigh 0.
type SparseVector[K comparable] map[K]float64

func (v SparseVector[K]) Get(k K) float64 {
	return v[k]
}

func (v SparseVector[K]) Add(k K, w float64) {
	v[k] += w
}

func (v SparseVector[K]) Set(k K, w float64) {
	v[k] = w
}

func (v SparseVector[K]) Magnitude() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func Dot[K comparable](a, b SparseVector[K]) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for k, w := range a {
		sum += w * b[k]
	}
	return sum
}

// Cosine is the cosine similarity of a and b, 0 when either has no magnitude.
func Cosine[K comparable](a, b SparseVector[K]) float64 {
	return cosine(Dot(a, b), a.Magnitude(), b.Magnitude())
}

func cosine(dot, magnitudeA, magnitudeB float64) float64 {
	if magnitudeA == 0 || magnitudeB == 0 {
		return 0
	}
	return dot / (magnitudeA * magnitudeB)
}
