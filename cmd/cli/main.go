package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"personal-fitness-trainer/config"
	"personal-fitness-trainer/internal/trainer"
	geminiRepo "personal-fitness-trainer/internal/trainer/repository/gemini"
	"personal-fitness-trainer/internal/trainer/usecase"
	"personal-fitness-trainer/pkg/gemini"
	"personal-fitness-trainer/pkg/log"
)

// main runs the trainer as an interactive console.
//
//	:modes          list modes
//	:mode <slug>    switch mode
//	:send           submit empty input for the current mode
//	:quit           exit
//
// Any other line is the input for the current mode: free text for the text
// modes, a path to a JPEG or PNG file for body-analysis. Ctrl-C during a
// request cancels that request only.
func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mainImpl() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})

	ctx := context.Background()

	vision, err := gemini.New(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		APIURL:      cfg.Gemini.APIURL,
		Model:       cfg.Gemini.VisionModel,
		Timeout:     cfg.Gemini.Timeout,
		Temperature: cfg.Gemini.Temperature,
	})
	if err != nil {
		return fmt.Errorf("vision model client: %w", err)
	}
	text, err := gemini.New(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		APIURL:      cfg.Gemini.APIURL,
		Model:       cfg.Gemini.TextModel,
		Timeout:     cfg.Gemini.Timeout,
		Temperature: cfg.Gemini.Temperature,
	})
	if err != nil {
		return fmt.Errorf("text model client: %w", err)
	}

	uc := usecase.New(logger, geminiRepo.New(logger, vision, text, cfg.Gemini.Timeout))
	con := newConsole(uc, os.Stdout, cfg.Upload.MaxImageBytes)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       con.prompt(),
		AutoComplete: completer(),
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()

	con.printModes()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if !con.submit(strings.TrimSpace(line)) {
			break
		}
		rl.SetPrompt(con.prompt())
	}
	return nil
}

func completer() *readline.PrefixCompleter {
	var slugs []readline.PrefixCompleterInterface
	for _, spec := range trainer.Modes() {
		slugs = append(slugs, readline.PcItem(string(spec.Mode)))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(":mode", slugs...),
		readline.PcItem(":modes"),
		readline.PcItem(":send"),
		readline.PcItem(":quit"),
	)
}
