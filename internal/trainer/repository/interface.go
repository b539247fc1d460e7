package repository

import (
	"context"

	"personal-fitness-trainer/internal/trainer"
)

// ModelClient sends assembled requests to the hosted generative model.
// The entry point decides the model identity: SendImage uses the vision model,
// SendText the text model.
type ModelClient interface {
	SendImage(ctx context.Context, content trainer.ImageContent, prompt string) (string, error)
	SendText(ctx context.Context, prompt string, content string) (string, error)
}
