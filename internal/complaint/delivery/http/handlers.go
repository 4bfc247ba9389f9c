package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "smartcity-complaints/pkg/errors"
	"smartcity-complaints/pkg/response"
)

// SubmitText godoc
// @Summary     Submit a text complaint
// @Description Classifies, routes, answers, and persists a citizen complaint.
// @Tags        Complaints
// @Accept      json
// @Produce     json
// @Param       body body submitTextReq true "Complaint data"
// @Success     200  {object} submitResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/complaints [POST]
func (h *handler) SubmitText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleText: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// SubmitVoice godoc
// @Summary     Submit a voice complaint
// @Description Transcribes the uploaded WAV recording and runs the complaint pipeline on the transcript.
// @Tags        Complaints
// @Accept      multipart/form-data
// @Produce     json
// @Param       citizen_name formData string true "Citizen name"
// @Param       audio        formData file   true "WAV recording (16 kHz mono)"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unprocessable - transcription failed"
// @Failure     503 {object} response.Resp "Voice submissions unavailable"
// @Router      /api/v1/complaints/voice [POST]
func (h *handler) SubmitVoice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleVoice(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleVoice: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// SubmitImage godoc
// @Summary     Submit an incident image
// @Description Classifies the uploaded image and returns the detected incident category. Image complaints are not persisted.
// @Tags        Complaints
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Incident photo (PNG or JPEG)"
// @Success     200 {object} imageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/complaints/image [POST]
func (h *handler) SubmitImage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitImageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleImage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleImage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newImageResp(output))
}

// List godoc
// @Summary     List complaints
// @Description Returns a paginated list of persisted complaints, newest first, with optional category filter.
// @Tags        Complaints
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category"
// @Param       limit    query int    false "Page size (default: 20, max: 100)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/complaints [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get complaint detail
// @Description Returns a single persisted complaint by its numeric ID.
// @Tags        Complaints
// @Accept      json
// @Produce     json
// @Param       id path int true "Complaint ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/complaints/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, pkgErrors.NewHTTPError(400, "id must be a positive integer"), nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}
