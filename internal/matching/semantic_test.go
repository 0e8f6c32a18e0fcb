package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skill-matcher/internal/embedding"
)

func TestSemanticScorer_IdenticalTexts(t *testing.T) {
	scorer := NewSemanticScorer(embedding.EncoderFunc(func(_ context.Context, _ string) ([]float32, error) {
		return []float32{0.5, 0.5, 0.5}, nil
	}))

	similarity := scorer.Similarity(context.Background(), "python developer", "python developer")
	assert.InDelta(t, 1.0, similarity, 1e-9)
}

func TestSemanticScorer_EmptyInputSkipsEncoder(t *testing.T) {
	calls := 0
	scorer := NewSemanticScorer(embedding.EncoderFunc(func(_ context.Context, _ string) ([]float32, error) {
		calls++
		return []float32{1, 0}, nil
	}))

	assert.Equal(t, 0.0, scorer.Similarity(context.Background(), "", "job description"))
	assert.Equal(t, 0.0, scorer.Similarity(context.Background(), "resume", "   "))
	assert.Equal(t, 0, calls)
}

func TestSemanticScorer_EncoderFailureDegrades(t *testing.T) {
	scorer := NewSemanticScorer(embedding.EncoderFunc(func(_ context.Context, _ string) ([]float32, error) {
		return nil, fmt.Errorf("backend unavailable")
	}))

	assert.Equal(t, 0.0, scorer.Similarity(context.Background(), "resume", "job"))
}

func TestSemanticScorer_OppositeVectors(t *testing.T) {
	flip := false
	scorer := NewSemanticScorer(embedding.EncoderFunc(func(_ context.Context, _ string) ([]float32, error) {
		flip = !flip
		if flip {
			return []float32{1, 0}, nil
		}
		return []float32{-1, 0}, nil
	}))

	similarity := scorer.Similarity(context.Background(), "a", "b")
	assert.InDelta(t, -1.0, similarity, 1e-9)
}
