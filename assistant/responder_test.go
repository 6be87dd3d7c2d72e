package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slight125/FarmFlow/models"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func TestNewResponderWithoutGeneratorUsesRules(t *testing.T) {
	db := newTestDB(t)
	seedCrop(t, db, 1, "Maize", models.CropStatusGrowing, testNow.AddDate(0, 1, 0))

	r := NewResponder(db, nil)
	_, isRules := r.(*ruleResponder)
	assert.True(t, isRules)

	resp := r.Respond(context.Background(), FarmScope(1), testNow, "How many crops do I have?")
	assert.Equal(t, ResponseInfo, resp.Type)
	assert.Contains(t, resp.Message, "1 total crops")
}

func TestModelResponderReturnsGeneratedText(t *testing.T) {
	db := newTestDB(t)

	r := NewResponder(db, &stubGenerator{text: "Fertilize your maize this week."})
	resp := r.Respond(context.Background(), FarmScope(1), testNow, "what about my crops?")

	assert.Equal(t, ResponseAI, resp.Type)
	assert.Equal(t, "Fertilize your maize this week.", resp.Message)
	// suggestions come from the question, not the model reply
	assert.Contains(t, resp.Suggestions, "Harvest timing recommendations")
}

func TestModelResponderDegradesOnGeneratorFailure(t *testing.T) {
	db := newTestDB(t)

	r := NewResponder(db, &stubGenerator{err: errors.New("connection refused")})
	resp := r.Respond(context.Background(), FarmScope(1), testNow, "any advice?")

	assert.Equal(t, ResponseError, resp.Type)
	assert.NotEmpty(t, resp.Message)
	assert.Contains(t, resp.Message, "temporarily unavailable")
	assert.NotEmpty(t, resp.Suggestions)
}

func TestModelResponderRejectsEmptyReply(t *testing.T) {
	db := newTestDB(t)

	r := NewResponder(db, &stubGenerator{text: "   \n"})
	resp := r.Respond(context.Background(), FarmScope(1), testNow, "hello?")

	require.Equal(t, ResponseError, resp.Type)
	assert.NotEmpty(t, resp.Message)
}
