package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"personal-fitness-trainer/internal/trainer"
	"personal-fitness-trainer/internal/trainer/usecase"
	"personal-fitness-trainer/pkg/log"
)

type stubModelClient struct {
	response  string
	image     *trainer.ImageContent
	content   string
	textCalls int

	// started, when set, is closed by the next SendText, which then waits
	// for its context to end.
	started chan struct{}
}

func (s *stubModelClient) SendImage(ctx context.Context, content trainer.ImageContent, prompt string) (string, error) {
	s.image = &content
	return s.response, nil
}

func (s *stubModelClient) SendText(ctx context.Context, prompt string, content string) (string, error) {
	s.textCalls++
	s.content = content
	if s.started != nil {
		close(s.started)
		s.started = nil
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "", errors.New("request was never interrupted")
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.response, nil
}

func newTestConsole(client *stubModelClient) (*console, *bytes.Buffer) {
	var out bytes.Buffer
	uc := usecase.New(log.NewNop(), client)
	return newConsole(uc, &out, 1<<10), &out
}

func TestConsole_TextMode(t *testing.T) {
	client := &stubModelClient{response: "- drink water"}
	con, out := newTestConsole(client)

	if !con.handle(context.Background(), ":mode fitness-tips") {
		t.Fatal("handle(:mode) returned false")
	}
	if con.mode != trainer.ModeFitnessTips {
		t.Fatalf("mode = %s, want %s", con.mode, trainer.ModeFitnessTips)
	}
	if con.prompt() != "[fitness-tips]> " {
		t.Errorf("prompt = %q", con.prompt())
	}

	con.handle(context.Background(), "How do I stay hydrated?")

	if client.content != "How do I stay hydrated?" {
		t.Errorf("content = %q", client.content)
	}
	if !strings.Contains(out.String(), "- drink water") {
		t.Errorf("output missing model text: %q", out.String())
	}
}

func TestConsole_ImageMode(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "me.png")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if err := os.WriteFile(pngPath, png, 0o600); err != nil {
		t.Fatal(err)
	}
	txtPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txtPath, []byte("just text"), 0o600); err != nil {
		t.Fatal(err)
	}

	client := &stubModelClient{response: "Estimated body fat: 18%"}
	con, out := newTestConsole(client)

	if con.mode != trainer.ModeBodyAnalysis {
		t.Fatalf("default mode = %s, want %s", con.mode, trainer.ModeBodyAnalysis)
	}

	con.handle(context.Background(), pngPath)
	if client.image == nil || client.image.MIMEType != "image/png" {
		t.Fatalf("image = %+v, want image/png", client.image)
	}
	if !strings.Contains(out.String(), "Estimated body fat: 18%") {
		t.Errorf("output missing model text: %q", out.String())
	}

	client.image = nil
	out.Reset()
	con.handle(context.Background(), txtPath)
	if client.image != nil {
		t.Error("non-image file reached the model")
	}
	if !strings.Contains(out.String(), "error:") {
		t.Errorf("expected error output, got %q", out.String())
	}
}

func TestConsole_Commands(t *testing.T) {
	con, out := newTestConsole(&stubModelClient{})

	if con.handle(context.Background(), ":quit") {
		t.Error(":quit should stop the loop")
	}

	con.handle(context.Background(), ":mode yoga")
	if !strings.Contains(out.String(), "error:") {
		t.Errorf("expected error for unknown mode, got %q", out.String())
	}
	if con.mode != trainer.ModeBodyAnalysis {
		t.Errorf("mode changed to %s after unknown slug", con.mode)
	}

	out.Reset()
	con.handle(context.Background(), ":modes")
	for _, spec := range trainer.Modes() {
		if !strings.Contains(out.String(), string(spec.Mode)) {
			t.Errorf(":modes output missing %s", spec.Mode)
		}
	}
}

func TestConsole_SendEmptyText(t *testing.T) {
	client := &stubModelClient{response: "- sleep 8 hours"}
	con, out := newTestConsole(client)
	ctx := context.Background()

	con.handle(ctx, ":mode fitness-tips")
	con.handle(ctx, ":send")

	if client.textCalls != 1 {
		t.Fatalf("text calls = %d, want 1", client.textCalls)
	}
	if client.content != "" {
		t.Errorf("content = %q, want empty", client.content)
	}
	if !strings.Contains(out.String(), "- sleep 8 hours") {
		t.Errorf("output missing model text: %q", out.String())
	}
}

func TestConsole_SendWithoutImage(t *testing.T) {
	client := &stubModelClient{}
	con, out := newTestConsole(client)

	con.handle(context.Background(), ":send")

	if client.image != nil {
		t.Error("model called without an image")
	}
	if !strings.Contains(out.String(), "error:") {
		t.Errorf("expected missing-input error, got %q", out.String())
	}
}

func TestConsole_ModeCommandIsExact(t *testing.T) {
	client := &stubModelClient{response: "ok"}
	con, out := newTestConsole(client)
	ctx := context.Background()

	con.handle(ctx, ":mode workout-plan")

	con.handle(ctx, ":modeling my squat form, any tips?")
	if con.mode != trainer.ModeWorkoutPlan {
		t.Errorf("mode changed to %s by free text", con.mode)
	}
	if client.content != ":modeling my squat form, any tips?" {
		t.Errorf("content = %q", client.content)
	}

	con.handle(ctx, ":mode build muscle fast")
	if client.content != ":mode build muscle fast" {
		t.Errorf("multi-word line should be sent as text, content = %q", client.content)
	}
	if con.mode != trainer.ModeWorkoutPlan {
		t.Errorf("mode changed to %s", con.mode)
	}

	out.Reset()
	calls := client.textCalls
	con.handle(ctx, ":mode")
	if client.textCalls != calls {
		t.Error("bare :mode reached the model")
	}
	if !strings.Contains(out.String(), "workout-plan") {
		t.Errorf("bare :mode should print the current mode, got %q", out.String())
	}
}

func TestConsole_InterruptCancelsOnlyCurrentRequest(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("os.Interrupt cannot be sent to a process on windows")
	}

	started := make(chan struct{})
	client := &stubModelClient{response: "rest between sets", started: started}
	con, out := newTestConsole(client)
	con.handle(context.Background(), ":mode fitness-tips")

	go func() {
		<-started
		p, err := os.FindProcess(os.Getpid())
		if err == nil {
			p.Signal(os.Interrupt)
		}
	}()

	if !con.submit("first question") {
		t.Fatal("interrupted request must not stop the console")
	}
	if !strings.Contains(out.String(), "context canceled") {
		t.Fatalf("expected cancelled request, got %q", out.String())
	}

	out.Reset()
	con.submit("second question")
	if !strings.Contains(out.String(), "rest between sets") {
		t.Errorf("request after interrupt failed: %q", out.String())
	}
}
