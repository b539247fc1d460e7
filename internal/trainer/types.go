package trainer

import "strings"

// Mode is one of the fixed interaction categories.
type Mode string

const (
	ModeBodyAnalysis  Mode = "body-analysis"
	ModeWorkoutPlan   Mode = "workout-plan"
	ModeNutritionPlan Mode = "nutrition-plan"
	ModeFitnessTips   Mode = "fitness-tips"
)

// ParseMode resolves a mode slug. Case and surrounding whitespace are ignored.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modeTable[m]; !ok {
		return "", ErrUnknownMode
	}
	return m, nil
}

func (m Mode) String() string { return string(m) }

// InputKind is the shape of user input a mode expects.
type InputKind string

const (
	InputImage InputKind = "image"
	InputText  InputKind = "text"
)

// EntryPoint names the model client call a mode is dispatched to.
type EntryPoint string

const (
	EntryVision EntryPoint = "vision"
	EntryText   EntryPoint = "text"
)

// ModeSpec binds a mode to its prompt, input kind, entry point and UI copy.
type ModeSpec struct {
	Mode     Mode
	Label    string
	Heading  string
	Hint     string
	Action   string
	Template string
	Input    InputKind
	Entry    EntryPoint
}

// ImageContent is the multimodal content descriptor for an uploaded image.
type ImageContent struct {
	Data     []byte
	MIMEType string
}

// PartKind tells a text part from an image part.
type PartKind int

const (
	PartText PartKind = iota
	PartImage
)

// Part is one ordered element of a ModelRequest.
type Part struct {
	Kind  PartKind
	Text  string
	Image *ImageContent
}

// ModelRequest is a prompt paired with the user's content, built right before dispatch.
type ModelRequest struct {
	Mode   Mode
	Prompt string
	Text   string
	Image  *ImageContent
}

// Parts returns the ordered content: image then prompt for the image mode,
// prompt then user text otherwise.
func (r ModelRequest) Parts() []Part {
	if r.Image != nil {
		return []Part{
			{Kind: PartImage, Image: r.Image},
			{Kind: PartText, Text: r.Prompt},
		}
	}
	return []Part{
		{Kind: PartText, Text: r.Prompt},
		{Kind: PartText, Text: r.Text},
	}
}

// --- UseCase Inputs ---

type AnalyzeInput struct {
	Mode  Mode
	Text  string
	Image *ImageContent
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Mode     Mode
	Heading  string
	Markdown string
}
