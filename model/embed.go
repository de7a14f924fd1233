package model

import "math"

// EmbedderInterface is the embedding capability consumed by the vector
// index.
type EmbedderInterface interface {
	Embed(text string) ([]float32, error)
}

// normalize64 scales a vector to unit length in place so cosine
// similarity reduces to a dot product downstream.
func normalize64(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i, x := range vec {
		vec[i] = x / norm
	}
	return vec
}
