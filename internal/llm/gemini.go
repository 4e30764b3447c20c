package llm

import (
	"context"
	"strings"

	genai "google.golang.org/genai"
)

// Sampling configuration for the two call sites. The vision call keeps
// a little temperature so descriptions read naturally; the generation
// call runs near-deterministic with a large output budget.
const (
	visionTemperature   = 0.7
	visionMaxTokens     = 2048
	generateTemperature = 0.3
	generateTopP        = 1
	generateMaxTokens   = 8192
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli           *genai.Client
	visionModel   string
	generateModel string
}

func NewGeminiClient(ctx context.Context, apiKey, visionModel, generateModel string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		cli:           cli,
		visionModel:   visionModel,
		generateModel: generateModel,
	}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.generateModel }
func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) DescribeImage(ctx context.Context, instruction, mimeType string, data []byte) (string, error) {
	contents := []*genai.Content{{Parts: []*genai.Part{
		{Text: instruction},
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
	}}}
	resp, err := g.cli.Models.GenerateContent(ctx, g.visionModel, contents,
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](visionTemperature),
			MaxOutputTokens: visionMaxTokens,
		},
	)
	if err != nil {
		return "", err
	}
	return firstCandidateText(resp)
}

func (g *GeminiClient) GenerateDocument(ctx context.Context, systemInstruction, prompt string) (string, error) {
	contents := []*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}}
	resp, err := g.cli.Models.GenerateContent(ctx, g.generateModel, contents,
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
			Temperature:       genai.Ptr[float32](generateTemperature),
			TopP:              genai.Ptr[float32](generateTopP),
			MaxOutputTokens:   generateMaxTokens,
		},
	)
	if err != nil {
		return "", err
	}
	return firstCandidateText(resp)
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, p := range content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}
