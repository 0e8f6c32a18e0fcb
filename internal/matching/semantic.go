package matching

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/skill-matcher/internal/embedding"
)

// SemanticScorer measures how close two texts are in embedding space.
type SemanticScorer struct {
	encoder embedding.Encoder
}

// NewSemanticScorer creates a SemanticScorer over the given encoder.
func NewSemanticScorer(encoder embedding.Encoder) *SemanticScorer {
	return &SemanticScorer{encoder: encoder}
}

// Similarity returns the cosine similarity of the two texts' embeddings.
//
// Empty or whitespace-only input short-circuits to 0.0 without calling the
// encoder. Encoder failures are logged and degrade to 0.0 so that a broken
// embedding backend weakens scores instead of failing the match.
func (s *SemanticScorer) Similarity(ctx context.Context, a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0.0
	}

	vecA, err := s.encoder.Encode(ctx, a)
	if err != nil {
		log.Printf("text similarity unavailable: %v", err)
		return 0.0
	}
	vecB, err := s.encoder.Encode(ctx, b)
	if err != nil {
		log.Printf("text similarity unavailable: %v", err)
		return 0.0
	}

	return embedding.Cosine(vecA, vecB)
}
