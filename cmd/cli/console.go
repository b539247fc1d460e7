package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gabriel-vasile/mimetype"

	"personal-fitness-trainer/internal/trainer"
)

var errUnsupportedImage = errors.New("only JPEG and PNG images are supported")

type console struct {
	uc            trainer.UseCase
	out           io.Writer
	mode          trainer.Mode
	maxImageBytes int64
}

func newConsole(uc trainer.UseCase, out io.Writer, maxImageBytes int64) *console {
	return &console{
		uc:            uc,
		out:           out,
		mode:          trainer.Modes()[0].Mode,
		maxImageBytes: maxImageBytes,
	}
}

func (c *console) prompt() string {
	return fmt.Sprintf("[%s]> ", c.mode)
}

func (c *console) printModes() {
	for _, spec := range c.uc.Modes() {
		marker := " "
		if spec.Mode == c.mode {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %-15s %s\n", marker, spec.Mode, spec.Hint)
	}
}

// submit handles one line under its own interrupt-scoped context, so Ctrl-C
// cancels only the request in flight.
func (c *console) submit(line string) bool {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.handle(ctx, line)
}

// handle processes one input line and reports whether to keep reading.
func (c *console) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	switch {
	case line == "":
		return true
	case line == ":quit" || line == ":q":
		return false
	case line == ":modes":
		c.printModes()
		return true
	case line == ":send":
		c.analyze(ctx, "")
		return true
	case len(fields) > 0 && fields[0] == ":mode" && len(fields) <= 2:
		if len(fields) == 1 {
			fmt.Fprintf(c.out, "current mode: %s (usage: :mode <slug>)\n", c.mode)
			return true
		}
		c.switchMode(fields[1])
		return true
	}

	c.analyze(ctx, line)
	return true
}

func (c *console) analyze(ctx context.Context, line string) {
	input, err := c.input(line)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}

	output, err := c.uc.Analyze(ctx, input)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}

	fmt.Fprintf(c.out, "\n## %s\n\n%s\n\n", output.Heading, output.Markdown)
}

func (c *console) switchMode(slug string) {
	mode, err := trainer.ParseMode(slug)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	c.mode = mode
	spec, _ := trainer.Lookup(mode)
	fmt.Fprintf(c.out, "%s: %s\n", spec.Label, spec.Hint)
}

func (c *console) input(line string) (trainer.AnalyzeInput, error) {
	spec, err := trainer.Lookup(c.mode)
	if err != nil {
		return trainer.AnalyzeInput{}, err
	}
	if spec.Input == trainer.InputText {
		return trainer.AnalyzeInput{Mode: c.mode, Text: line}, nil
	}

	if line == "" {
		return trainer.AnalyzeInput{Mode: c.mode}, nil
	}
	img, err := c.readImage(line)
	if err != nil {
		return trainer.AnalyzeInput{}, err
	}
	return trainer.AnalyzeInput{Mode: c.mode, Image: img}, nil
}

func (c *console) readImage(path string) (*trainer.ImageContent, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if c.maxImageBytes > 0 && info.Size() > c.maxImageBytes {
		return nil, fmt.Errorf("image is %d bytes, limit is %d", info.Size(), c.maxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mt := mimetype.Detect(data)
	if !mt.Is("image/jpeg") && !mt.Is("image/png") {
		return nil, fmt.Errorf("%s: %w", mt.String(), errUnsupportedImage)
	}
	return &trainer.ImageContent{Data: data, MIMEType: mt.String()}, nil
}
