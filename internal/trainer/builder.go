package trainer

import "fmt"

// BuildImageRequest pairs the body analysis prompt with the uploaded image.
// Bytes and MIME type are carried unchanged.
func BuildImageRequest(imageBytes []byte, mimeType string) (ModelRequest, error) {
	if len(imageBytes) == 0 {
		return ModelRequest{}, fmt.Errorf("%w: no image uploaded", ErrInputMissing)
	}
	if mimeType == "" {
		return ModelRequest{}, fmt.Errorf("%w: image media type", ErrInputMissing)
	}

	spec := modeTable[ModeBodyAnalysis]
	return ModelRequest{
		Mode:   spec.Mode,
		Prompt: spec.Template,
		Image:  &ImageContent{Data: imageBytes, MIMEType: mimeType},
	}, nil
}

// BuildTextRequest pairs the mode's prompt with the user's text. Empty text is forwarded as is.
func BuildTextRequest(mode Mode, userText string) (ModelRequest, error) {
	spec, err := Lookup(mode)
	if err != nil {
		return ModelRequest{}, err
	}
	if spec.Input != InputText {
		return ModelRequest{}, fmt.Errorf("%w: %s expects %s input", ErrInputKindMismatch, mode, spec.Input)
	}

	return ModelRequest{
		Mode:   spec.Mode,
		Prompt: spec.Template,
		Text:   userText,
	}, nil
}
