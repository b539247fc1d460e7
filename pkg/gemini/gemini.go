package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type geminiImpl struct {
	client      *genai.Client
	model       string
	temperature float64
}

func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.APIURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &geminiImpl{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(transformParts(req.Parts), genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.generationConfig(req))
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if err := checkCandidate(resp.Candidates[0]); err != nil {
		return nil, err
	}

	return transformResponse(resp), nil
}

// blockedFinishReasons end a candidate without usable content.
var blockedFinishReasons = map[genai.FinishReason]bool{
	"SAFETY":             true,
	"RECITATION":         true,
	"BLOCKLIST":          true,
	"PROHIBITED_CONTENT": true,
	"SPII":               true,
	"IMAGE_SAFETY":       true,
}

func checkCandidate(c *genai.Candidate) error {
	if c == nil {
		return ErrNoCandidates
	}
	if blockedFinishReasons[c.FinishReason] {
		return fmt.Errorf("%w: finish reason %s", ErrBlocked, c.FinishReason)
	}
	if c.Content == nil || len(c.Content.Parts) == 0 {
		return fmt.Errorf("%w: finish reason %s", ErrEmptyCandidate, c.FinishReason)
	}
	return nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) generationConfig(req *Request) *genai.GenerateContentConfig {
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = g.temperature
	}
	if temperature <= 0 && req.MaxTokens <= 0 {
		return nil
	}

	cfg := &genai.GenerateContentConfig{}
	if temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	return cfg
}

func transformParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, part := range parts {
		if part.InlineData != nil {
			out = append(out, &genai.Part{InlineData: &genai.Blob{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			}})
			continue
		}
		out = append(out, &genai.Part{Text: part.Text})
	}
	return out
}

func transformResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{
		Text:  resp.Text(),
		Usage: &Usage{},
	}
	if md := resp.UsageMetadata; md != nil {
		out.Usage.InputTokens = int(md.PromptTokenCount)
		out.Usage.OutputTokens = int(md.CandidatesTokenCount)
		out.Usage.TotalTokens = int(md.TotalTokenCount)
	}
	return out
}

// wrapError converts SDK API errors into *APIError and leaves transport errors wrapped as-is.
func wrapError(err error) error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch apiErr := e.(type) {
		case genai.APIError:
			return &APIError{StatusCode: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message}
		case *genai.APIError:
			return &APIError{StatusCode: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message}
		}
	}
	return fmt.Errorf("gemini: failed to call API: %w", err)
}
