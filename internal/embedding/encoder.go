// Package embedding provides the sentence-embedding encoder abstraction and
// vector similarity used by the semantic matcher. The encoder is a heavyweight
// backend resource: construct it once at process start and share it across calls.
package embedding

import (
	"context"
	"math"

	"github.com/jonathan/skill-matcher/internal/llm"
)

// Encoder encodes text into a fixed-size dense vector.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(ctx context.Context, text string) ([]float32, error)

// Encode calls the wrapped function.
func (f EncoderFunc) Encode(ctx context.Context, text string) ([]float32, error) {
	return f(ctx, text)
}

// ClientEncoder backs the Encoder interface with an LLM client's embedding model.
type ClientEncoder struct {
	client llm.Client
}

// NewClientEncoder wraps an LLM client as an Encoder.
func NewClientEncoder(client llm.Client) *ClientEncoder {
	return &ClientEncoder{client: client}
}

// Encode encodes text via the client's embedding model.
func (e *ClientEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	return e.client.EmbedText(ctx, text)
}

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// Mismatched lengths and zero vectors yield 0 (degenerate, not an error).
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Guard against floating-point drift outside [-1, 1]
	if similarity > 1 {
		return 1
	}
	if similarity < -1 {
		return -1
	}
	return similarity
}
