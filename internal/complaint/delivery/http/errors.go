package http

import (
	"errors"

	"smartcity-complaints/internal/complaint"
	pkgErrors "smartcity-complaints/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Unrecognized errors map to 500 with a generic message so
// storage details never leak to the citizen.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, complaint.ErrEmptyCitizenName),
		errors.Is(err, complaint.ErrEmptyMessage),
		errors.Is(err, complaint.ErrEmptyAudio),
		errors.Is(err, complaint.ErrEmptyImage):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, complaint.ErrTranscription):
		return pkgErrors.NewHTTPError(422, "could not transcribe the audio recording")
	case errors.Is(err, complaint.ErrTranscriberUnavailable):
		return pkgErrors.NewHTTPError(503, "voice submissions are temporarily unavailable")
	case errors.Is(err, complaint.ErrComplaintNotFound):
		return pkgErrors.NewHTTPError(404, "complaint not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
