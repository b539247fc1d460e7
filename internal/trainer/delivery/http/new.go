package http

import (
	"github.com/gin-gonic/gin"

	"personal-fitness-trainer/internal/trainer"
	"personal-fitness-trainer/pkg/log"
)

// Handler is the public interface for the trainer HTTP delivery layer.
type Handler interface {
	ListModes(c *gin.Context)
	Analyze(c *gin.Context)
}

type handler struct {
	l             log.Logger
	uc            trainer.UseCase
	maxImageBytes int64
}

// New creates a new HTTP handler for the trainer domain. maxImageBytes caps uploads.
func New(l log.Logger, uc trainer.UseCase, maxImageBytes int64) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		maxImageBytes: maxImageBytes,
	}
}
