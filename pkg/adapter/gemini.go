package adapter

import (
	"context"
	"strings"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// LLM is the capability the brief pipeline consumes: one prompt in, raw text
// out. The reply may be markdown-fenced or malformed JSON; parsing and
// retrying are the caller's responsibility, not the adapter's.
type LLM interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	client *genai.Client
	model  string
}

type GeminiOption func(*GeminiClient)

func WithGenerativeModel(model string) GeminiOption {
	return func(g *GeminiClient) {
		g.model = model
	}
}

// NewGemini creates a Gemini client using the Gemini API backend
func NewGemini(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client")
	}

	g := &GeminiClient{
		client: client,
		model:  "gemini-2.5-pro",
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Complete sends a single prompt and returns the concatenated text parts of
// the first candidate. Transport failures and empty responses surface as
// model.ErrModelUnavailable.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", goerr.Wrap(model.ErrModelUnavailable, "gemini call failed", goerr.V("cause", err))
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", goerr.Wrap(model.ErrModelUnavailable, "empty response from gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	if text.Len() == 0 {
		return "", goerr.Wrap(model.ErrModelUnavailable, "no text in gemini response")
	}

	return text.String(), nil
}
