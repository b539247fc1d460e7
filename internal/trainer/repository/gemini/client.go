package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"personal-fitness-trainer/internal/trainer"
	"personal-fitness-trainer/pkg/gemini"
)

// SendImage sends the image descriptor followed by the prompt to the vision model.
func (r *implRepository) SendImage(ctx context.Context, content trainer.ImageContent, prompt string) (string, error) {
	if len(content.Data) == 0 || content.MIMEType == "" {
		return "", fmt.Errorf("%w: image content", trainer.ErrInputMissing)
	}
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt", trainer.ErrInputMissing)
	}

	req := trainer.ModelRequest{Prompt: prompt, Image: &content}
	return r.generate(ctx, r.vision, toParts(req.Parts()))
}

// SendText sends the prompt followed by the user's text to the text model.
func (r *implRepository) SendText(ctx context.Context, prompt string, content string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt", trainer.ErrInputMissing)
	}

	req := trainer.ModelRequest{Prompt: prompt, Text: content}
	return r.generate(ctx, r.text, toParts(req.Parts()))
}

func toParts(parts []trainer.Part) []gemini.Part {
	out := make([]gemini.Part, 0, len(parts))
	for _, p := range parts {
		if p.Kind == trainer.PartImage && p.Image != nil {
			out = append(out, gemini.BlobPart(p.Image.Data, p.Image.MIMEType))
			continue
		}
		out = append(out, gemini.TextPart(p.Text))
	}
	return out
}

func (r *implRepository) generate(ctx context.Context, client gemini.IGemini, parts []gemini.Part) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	resp, err := client.GenerateContent(ctx, &gemini.Request{Parts: parts})
	if err != nil {
		r.l.Warnf(ctx, "trainer.repository.gemini.generate: model=%s: %v", client.Model(), err)
		return "", &trainer.ModelError{Model: client.Model(), Kind: classify(err), Err: err}
	}

	if resp.Usage != nil {
		r.l.Debugf(ctx, "trainer.repository.gemini.generate: model=%s input_tokens=%d output_tokens=%d",
			client.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}

	return resp.Text, nil
}

// classify maps a client failure onto the domain taxonomy: anything the endpoint
// rejected is a request error, server-side and transport failures mean unavailable.
func classify(err error) error {
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return trainer.ErrModelUnavailable
		}
		return trainer.ErrModelRequest
	}
	if errors.Is(err, gemini.ErrNoCandidates) || errors.Is(err, gemini.ErrBlocked) || errors.Is(err, gemini.ErrEmptyCandidate) {
		return trainer.ErrModelRequest
	}
	return trainer.ErrModelUnavailable
}
