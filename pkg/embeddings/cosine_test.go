package embeddings

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{
			name: "identical vectors",
			a:    []float64{1, 2, 3},
			b:    []float64{1, 2, 3},
			want: 1,
		},
		{
			name: "orthogonal vectors",
			a:    []float64{1, 0},
			b:    []float64{0, 1},
			want: 0,
		},
		{
			name: "opposite vectors",
			a:    []float64{1, 0},
			b:    []float64{-1, 0},
			want: -1,
		},
		{
			name: "empty first vector",
			a:    nil,
			b:    []float64{1, 2},
			want: 0,
		},
		{
			name: "length mismatch",
			a:    []float64{1, 2},
			b:    []float64{1, 2, 3},
			want: 0,
		},
		{
			name: "zero magnitude",
			a:    []float64{0, 0},
			b:    []float64{1, 1},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIsSymmetric(t *testing.T) {
	a := []float64{0.3, 0.7, 0.1, 0.9}
	b := []float64{0.5, 0.2, 0.8, 0.4}

	if got, rev := CosineSimilarity(a, b), CosineSimilarity(b, a); got != rev {
		t.Errorf("CosineSimilarity(a,b) = %v but CosineSimilarity(b,a) = %v", got, rev)
	}
}
