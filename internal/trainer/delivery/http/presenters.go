package http

import (
	"time"

	"personal-fitness-trainer/internal/trainer"
	"personal-fitness-trainer/pkg/response"
)

// --- Request DTOs ---

type analyzeTextReq struct {
	Text string `json:"text"`
}

type analyzeReq struct {
	Mode  trainer.Mode
	Text  string
	Image *trainer.ImageContent
}

func (r analyzeReq) toInput() trainer.AnalyzeInput {
	return trainer.AnalyzeInput{
		Mode:  r.Mode,
		Text:  r.Text,
		Image: r.Image,
	}
}

// --- Response DTOs ---

type modeResp struct {
	Mode    string `json:"mode"`
	Label   string `json:"label"`
	Heading string `json:"heading"`
	Hint    string `json:"hint"`
	Action  string `json:"action"`
	Input   string `json:"input"`
}

type listModesResp struct {
	Modes []modeResp `json:"modes"`
}

func (h *handler) newListModesResp(specs []trainer.ModeSpec) listModesResp {
	modes := make([]modeResp, len(specs))
	for i, s := range specs {
		modes[i] = modeResp{
			Mode:    s.Mode.String(),
			Label:   s.Label,
			Heading: s.Heading,
			Hint:    s.Hint,
			Action:  s.Action,
			Input:   string(s.Input),
		}
	}
	return listModesResp{Modes: modes}
}

type analyzeResp struct {
	Mode        string            `json:"mode"`
	Heading     string            `json:"heading"`
	Markdown    string            `json:"markdown"`
	GeneratedAt response.DateTime `json:"generated_at"`
}

func (h *handler) newAnalyzeResp(out trainer.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Mode:        out.Mode.String(),
		Heading:     out.Heading,
		Markdown:    out.Markdown,
		GeneratedAt: response.DateTime(time.Now()),
	}
}
