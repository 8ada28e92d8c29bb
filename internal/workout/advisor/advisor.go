// Package advisor talks to the external model that proposes next-session
// weights. Whatever comes back is advisory text only, every number in it
// goes through the progression validator before anything is persisted.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.5-flash"

var ErrEmptyResponse = errors.New("empty model response")

// Gemini asks a Google Gemini model for next-session weight advice.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key not set")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	log.Debugf("gemini advisor ready, model: %s", model)

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// Advise sends the prompt and returns the raw model text. The caller owns
// the deadline on ctx and the parsing of whatever text comes back.
func (g *Gemini) Advise(ctx context.Context, prompt string) (text string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "advisor.gemini.advise")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "advice received")
		}
	}()

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text = responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}

	log.Tracef("gemini advisor responded with %d chars", len(text))

	return text, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
