package entities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityResponse_ValidArray(t *testing.T) {
	response := `[
		{"text": "Docker", "label": "PRODUCT"},
		{"text": "Amazon", "label": "ORG"}
	]`

	entities, err := parseEntityResponse(response)
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, Entity{Text: "Docker", Label: "PRODUCT"}, entities[0])
	assert.Equal(t, Entity{Text: "Amazon", Label: "ORG"}, entities[1])
}

func TestParseEntityResponse_WrappedInProse(t *testing.T) {
	response := `Here are the entities: [{"text": "Kubernetes", "label": "product"}] Done.`

	entities, err := parseEntityResponse(response)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "PRODUCT", entities[0].Label)
}

func TestParseEntityResponse_DropsUnknownLabels(t *testing.T) {
	response := `[
		{"text": "John Doe", "label": "PERSON"},
		{"text": "", "label": "ORG"},
		{"text": "AWS", "label": "ORG"}
	]`

	entities, err := parseEntityResponse(response)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "AWS", entities[0].Text)
}

func TestParseEntityResponse_NoArray(t *testing.T) {
	_, err := parseEntityResponse("I could not find any entities.")
	assert.Error(t, err)
}

func TestRecognizerFunc(t *testing.T) {
	recognizer := RecognizerFunc(func(_ context.Context, _ string) ([]Entity, error) {
		return []Entity{{Text: "Go", Label: LabelProduct}}, nil
	})

	entities, err := recognizer.Entities(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Go", entities[0].Text)
}
