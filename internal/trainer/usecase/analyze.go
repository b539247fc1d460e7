package usecase

import (
	"context"
	"fmt"

	"personal-fitness-trainer/internal/trainer"
)

// Modes returns the available modes in display order.
func (uc *implUseCase) Modes() []trainer.ModeSpec {
	return trainer.Modes()
}

// Analyze builds the request for the selected mode and dispatches it to the
// mode's entry point. Input that does not fit the mode fails before any call.
func (uc *implUseCase) Analyze(ctx context.Context, input trainer.AnalyzeInput) (trainer.AnalyzeOutput, error) {
	spec, err := trainer.Lookup(input.Mode)
	if err != nil {
		return trainer.AnalyzeOutput{}, err
	}

	req, err := uc.build(spec, input)
	if err != nil {
		uc.l.Warnf(ctx, "trainer.usecase.Analyze: mode=%s: %v", spec.Mode, err)
		return trainer.AnalyzeOutput{}, err
	}

	markdown, err := uc.dispatch(ctx, spec, req)
	if err != nil {
		uc.l.Errorf(ctx, "trainer.usecase.Analyze: mode=%s: %v", spec.Mode, err)
		return trainer.AnalyzeOutput{}, err
	}

	uc.l.Infof(ctx, "trainer.usecase.Analyze: mode=%s response_bytes=%d", spec.Mode, len(markdown))

	return trainer.AnalyzeOutput{
		Mode:     spec.Mode,
		Heading:  spec.Heading,
		Markdown: markdown,
	}, nil
}

func (uc *implUseCase) build(spec trainer.ModeSpec, input trainer.AnalyzeInput) (trainer.ModelRequest, error) {
	switch spec.Input {
	case trainer.InputImage:
		if input.Image == nil {
			return trainer.ModelRequest{}, fmt.Errorf("%w: no image uploaded", trainer.ErrInputMissing)
		}
		return trainer.BuildImageRequest(input.Image.Data, input.Image.MIMEType)
	case trainer.InputText:
		if input.Image != nil {
			return trainer.ModelRequest{}, fmt.Errorf("%w: %s does not take an image", trainer.ErrInputKindMismatch, spec.Mode)
		}
		return trainer.BuildTextRequest(spec.Mode, input.Text)
	default:
		return trainer.ModelRequest{}, fmt.Errorf("%w: %s", trainer.ErrUnknownMode, spec.Mode)
	}
}

func (uc *implUseCase) dispatch(ctx context.Context, spec trainer.ModeSpec, req trainer.ModelRequest) (string, error) {
	switch spec.Entry {
	case trainer.EntryVision:
		return uc.client.SendImage(ctx, *req.Image, req.Prompt)
	case trainer.EntryText:
		return uc.client.SendText(ctx, req.Prompt, req.Text)
	default:
		return "", fmt.Errorf("%w: %s has no entry point", trainer.ErrUnknownMode, spec.Mode)
	}
}
