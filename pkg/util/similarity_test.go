package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "plumber", "plumber", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "plumber", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"single typo", "plumbr", "plumber", 12.0 / 13.0},
		{"shared prefix", "clean", "cleaner", 10.0 / 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"home cleaning", "cleaning"},
		{"pipe masters", "plumber"},
		{"salon", "saloon"},
	}
	for _, p := range pairs {
		assert.InDelta(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), 1e-9)
	}
}

func TestSimilarity_CutoffExamples(t *testing.T) {
	// Near-miss spellings land above the suggestion cutoff
	assert.GreaterOrEqual(t, Similarity("plumbr", "plumber"), 0.7)
	assert.GreaterOrEqual(t, Similarity("saloon", "salon"), 0.7)

	// Unrelated terms stay below it
	assert.Less(t, Similarity("plumber", "electrician"), 0.7)
}
