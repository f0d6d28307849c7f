package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash"

// Gemini asks a Google Gemini model.
type Gemini struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// NewGemini creates a Gemini assistant.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model, maxTokens: 512}, nil
}

func (g *Gemini) Reply(ctx context.Context, f Facts, message string) (string, error) {
	contents := make([]*genai.Content, 0, 2*len(f.History)+1)
	for _, x := range f.History {
		contents = append(contents,
			genai.NewContentFromText(x.Message, genai.RoleUser),
			genai.NewContentFromText(x.Reply, genai.RoleModel),
		)
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(Instructions(f), genai.RoleUser),
		MaxOutputTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini returned an empty reply")
	}
	return text, nil
}
