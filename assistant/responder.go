package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/slight125/FarmFlow/config"
)

// TextGenerator is the one capability the assistant needs from an external
// model: prompt in, text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Responder answers a free-text question for one scope. The concrete
// variant is fixed at construction: configured farms get the model-backed
// responder, everyone else the rule engine, and the choice is never
// re-examined per call.
type Responder interface {
	Respond(ctx context.Context, scope Scope, now time.Time, question string) Response
}

// generateTimeout bounds the external call. Single attempt, no retry: a
// slow answer is worth less than a fast fallback here.
const generateTimeout = 30 * time.Second

// NewResponder picks the variant once. A nil generator means no credential
// was configured at startup and the rule engine handles everything.
func NewResponder(db *gorm.DB, gen TextGenerator) Responder {
	if gen == nil {
		config.GetLogger().Info("💬 assistant running in rule-based mode (no API key configured)")
		return &ruleResponder{db: db}
	}
	config.GetLogger().Info("💬 assistant running with generative model backend")
	return &modelResponder{db: db, gen: gen}
}

type ruleResponder struct {
	db *gorm.DB
}

func (r *ruleResponder) Respond(ctx context.Context, scope Scope, now time.Time, question string) Response {
	snap, err := BuildSnapshot(r.db, scope, now)
	if err != nil {
		return storeErrorResponse(err)
	}
	return RuleAnswer(snap, question)
}

type modelResponder struct {
	db  *gorm.DB
	gen TextGenerator
}

func (r *modelResponder) Respond(ctx context.Context, scope Scope, now time.Time, question string) Response {
	snap, err := BuildSnapshot(r.db, scope, now)
	if err != nil {
		return storeErrorResponse(err)
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	text, err := r.gen.Generate(genCtx, BuildPrompt(snap, question))
	if err != nil {
		config.GetLogger().Warnf("text generation failed: %v", err)
		return Response{
			Type:        ResponseError,
			Message:     fmt.Sprintf("AI assistant temporarily unavailable: %v", err),
			Suggestions: genericSuggestions(),
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Response{
			Type:        ResponseError,
			Message:     "The assistant returned an empty reply. Could you ask your question in a different way?",
			Suggestions: genericSuggestions(),
		}
	}

	return Response{
		Type:        ResponseAI,
		Message:     text,
		Suggestions: followUpSuggestions(question),
	}
}

func storeErrorResponse(err error) Response {
	config.GetLogger().Errorf("snapshot build failed: %v", err)
	return Response{
		Type:        ResponseError,
		Message:     "Could not read your farm records right now. Please try again.",
		Suggestions: genericSuggestions(),
	}
}
