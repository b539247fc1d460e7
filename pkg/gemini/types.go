package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrMissingAPIKey is returned by Validate when no API key is configured.
	ErrMissingAPIKey = errors.New("gemini: api key is required")

	// ErrNoCandidates is returned when the API answers without any candidate,
	// which happens when the prompt is blocked.
	ErrNoCandidates = errors.New("gemini: response has no candidates")

	// ErrBlocked is returned when the first candidate was stopped by a safety
	// or recitation filter.
	ErrBlocked = errors.New("gemini: response was blocked")

	// ErrEmptyCandidate is returned when the first candidate carries no content.
	ErrEmptyCandidate = errors.New("gemini: candidate has no content")
)

// Config configures a single-model client.
type Config struct {
	APIKey      string
	APIURL      string
	APIVersion  string
	Model       string
	Timeout     time.Duration
	Temperature float64
	HTTPClient  *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Request is a single-turn generation request: ordered parts of one user message.
type Request struct {
	Parts       []Part
	Temperature float64
	MaxTokens   int
}

// Part holds either a text segment or inline binary data.
type Part struct {
	Text       string
	InlineData *Blob
}

// Blob is inline media sent alongside text.
type Blob struct {
	MIMEType string
	Data     []byte
}

// TextPart builds a text Part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart builds an inline data Part.
func BlobPart(data []byte, mimeType string) Part {
	return Part{InlineData: &Blob{MIMEType: mimeType, Data: data}}
}

// Response is the first candidate's text plus token usage.
type Response struct {
	Text  string
	Usage *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// APIError is returned when the API answered with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Message)
}
