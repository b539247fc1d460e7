package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"personal-fitness-trainer/internal/trainer"
)

// imageField is the multipart field carrying the body analysis upload.
const imageField = "image"

// acceptedImageTypes mirrors the upload filter: jpg, jpeg and png.
var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

var (
	errUnsupportedImage = errors.New("unsupported image type")
	errImageTooLarge    = errors.New("image too large")
	errInvalidBody      = errors.New("invalid request body")
)

// processAnalyzeReq resolves the mode from the path and binds the input the mode expects.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	mode, err := trainer.ParseMode(c.Param("mode"))
	if err != nil {
		return analyzeReq{}, err
	}
	spec, err := trainer.Lookup(mode)
	if err != nil {
		return analyzeReq{}, err
	}

	req := analyzeReq{Mode: mode}
	if spec.Input == trainer.InputImage {
		img, err := h.readImage(c)
		if err != nil {
			return req, err
		}
		req.Image = img
		return req, nil
	}

	var body analyzeTextReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			return req, fmt.Errorf("%w: %v", errInvalidBody, err)
		}
	}
	req.Text = body.Text
	return req, nil
}

// readImage returns nil without error when no file was uploaded, leaving the
// missing-input decision to the use case.
func (h *handler) readImage(c *gin.Context) (*trainer.ImageContent, error) {
	if h.maxImageBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImageBytes+(1<<20))
	}

	fh, err := c.FormFile(imageField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			return nil, errImageTooLarge
		}
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if h.maxImageBytes > 0 && fh.Size > h.maxImageBytes {
		return nil, errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	mimeType := declaredType(fh.Header.Get("Content-Type"))
	if !acceptedImageTypes[mimeType] {
		mimeType = declaredType(mimetype.Detect(data).String())
	}
	if !acceptedImageTypes[mimeType] {
		return nil, errUnsupportedImage
	}

	return &trainer.ImageContent{Data: data, MIMEType: mimeType}, nil
}

// imageTypeAliases maps non-standard names clients send for accepted types.
var imageTypeAliases = map[string]string{
	"image/jpg":   "image/jpeg",
	"image/pjpeg": "image/jpeg",
	"image/x-png": "image/png",
}

// declaredType strips parameters, normalizes aliases and ignores the generic
// binary type.
func declaredType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil || mt == "application/octet-stream" {
		return ""
	}
	if alias, ok := imageTypeAliases[mt]; ok {
		return alias
	}
	return mt
}
