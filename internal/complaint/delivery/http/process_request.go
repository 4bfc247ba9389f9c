package http

import (
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "smartcity-complaints/pkg/errors"
)

// Upload size caps. Voice notes run larger than incident photos.
const (
	maxAudioBytes = 16 << 20
	maxImageBytes = 8 << 20
)

// processSubmitTextReq binds and validates the text submission body.
func (h *handler) processSubmitTextReq(c *gin.Context) (submitTextReq, error) {
	var req submitTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid request body: citizen_name and message are required")
	}
	return req, nil
}

// processSubmitVoiceReq reads the multipart voice submission:
// citizen_name form field plus an "audio" WAV file part.
func (h *handler) processSubmitVoiceReq(c *gin.Context) (submitVoiceReq, error) {
	var req submitVoiceReq

	req.CitizenName = c.PostForm("citizen_name")
	if req.CitizenName == "" {
		return req, pkgErrors.NewHTTPError(400, "citizen_name form field is required")
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "audio file part is required")
	}
	if fh.Size > maxAudioBytes {
		return req, pkgErrors.NewHTTPErrorf(413, "audio file exceeds %d bytes", maxAudioBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "cannot read audio file part")
	}
	defer f.Close()

	req.Audio, err = io.ReadAll(io.LimitReader(f, maxAudioBytes+1))
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "cannot read audio file part")
	}
	return req, nil
}

// processSubmitImageReq reads the multipart image submission: a single
// "image" file part.
func (h *handler) processSubmitImageReq(c *gin.Context) (submitImageReq, error) {
	var req submitImageReq

	fh, err := c.FormFile("image")
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "image file part is required")
	}
	if fh.Size > maxImageBytes {
		return req, pkgErrors.NewHTTPErrorf(413, "image file exceeds %d bytes", maxImageBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "cannot read image file part")
	}
	defer f.Close()

	req.Image, err = io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "cannot read image file part")
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid query parameters")
	}
	return req, nil
}
