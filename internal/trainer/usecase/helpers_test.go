package usecase

import (
	"context"

	"personal-fitness-trainer/internal/trainer"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Stub model client recording every call
type stubModelClient struct {
	response string
	err      error

	imageCalls int
	textCalls  int

	lastImage   trainer.ImageContent
	lastPrompt  string
	lastContent string
}

func (s *stubModelClient) SendImage(ctx context.Context, content trainer.ImageContent, prompt string) (string, error) {
	s.imageCalls++
	s.lastImage = content
	s.lastPrompt = prompt
	return s.response, s.err
}

func (s *stubModelClient) SendText(ctx context.Context, prompt string, content string) (string, error) {
	s.textCalls++
	s.lastPrompt = prompt
	s.lastContent = content
	return s.response, s.err
}

func (s *stubModelClient) calls() int {
	return s.imageCalls + s.textCalls
}
