package gemini

import (
	"time"

	"personal-fitness-trainer/pkg/gemini"
	"personal-fitness-trainer/pkg/log"
)

type implRepository struct {
	l       log.Logger
	vision  gemini.IGemini
	text    gemini.IGemini
	timeout time.Duration
}

// New creates a Gemini-backed ModelClient. timeout bounds each call; zero means
// the caller's context is used as is.
func New(l log.Logger, vision, text gemini.IGemini, timeout time.Duration) *implRepository {
	return &implRepository{
		l:       l,
		vision:  vision,
		text:    text,
		timeout: timeout,
	}
}
