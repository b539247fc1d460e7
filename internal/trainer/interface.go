package trainer

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Modes() []ModeSpec
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
