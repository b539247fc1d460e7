package http

import (
	"errors"
	"net/http"

	"personal-fitness-trainer/internal/trainer"
	pkgErrors "personal-fitness-trainer/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, trainer.ErrUnknownMode):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "unknown mode")
	case errors.Is(err, trainer.ErrInputMissing):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "please upload an image first")
	case errors.Is(err, trainer.ErrInputKindMismatch):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "this mode does not accept that kind of input")
	case errors.Is(err, errInvalidBody):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "request body must be JSON like {\"text\": \"...\"}")
	case errors.Is(err, errUnsupportedImage):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "only jpg, jpeg and png images are supported")
	case errors.Is(err, errImageTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "image is too large")
	case errors.Is(err, trainer.ErrModelUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "the trainer is unavailable, please try again later")
	case errors.Is(err, trainer.ErrModelRequest):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "the trainer could not answer this request")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
