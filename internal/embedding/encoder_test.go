package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float32{1, 2, 3}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OppositeVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}
	assert.InDelta(t, -1.0, Cosine(a, b), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0.0, Cosine(a, b), 1e-9)
}

func TestCosine_Symmetric(t *testing.T) {
	a := []float32{0.3, -0.7, 0.2, 0.9}
	b := []float32{-0.1, 0.4, 0.8, 0.5}
	assert.InDelta(t, Cosine(a, b), Cosine(b, a), 1e-12)
}

func TestCosine_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
}

func TestCosine_ClampedToRange(t *testing.T) {
	// Near-parallel vectors can drift slightly above 1.0 in floating point
	a := []float32{1e-3, 1e-3, 1e-3}
	b := []float32{1e-3, 1e-3, 1e-3}
	got := Cosine(a, b)
	assert.LessOrEqual(t, got, 1.0)
	assert.GreaterOrEqual(t, got, -1.0)
}

func TestEncoderFunc(t *testing.T) {
	encoder := EncoderFunc(func(_ context.Context, text string) ([]float32, error) {
		return []float32{float32(len(text))}, nil
	})

	vec, err := encoder.Encode(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, vec)
}
