package usecase

import (
	"personal-fitness-trainer/internal/trainer"
	"personal-fitness-trainer/internal/trainer/repository"
	"personal-fitness-trainer/pkg/log"
)

// implUseCase is the private implementation of trainer.UseCase.
type implUseCase struct {
	l      log.Logger
	client repository.ModelClient
}

// New creates a new trainer UseCase implementation.
func New(l log.Logger, client repository.ModelClient) trainer.UseCase {
	return &implUseCase{
		l:      l,
		client: client,
	}
}
