package http

import (
	"github.com/gin-gonic/gin"

	"poster-events/pkg/response"
)

// Process godoc
// @Summary     Extract events from a poster
// @Description Runs OCR on the uploaded poster image and asks a language model for the events it advertises.
// @Tags        Poster
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Poster image"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.ErrorResp "Missing file or unreadable image"
// @Failure     413 {object} response.ErrorResp "File too large"
// @Failure     500 {object} response.ErrorResp "Recognition or extraction failed"
// @Failure     504 {object} response.ErrorResp "Processing timed out"
// @Router      /api/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		h.l.Warnf(ctx, "poster.delivery.http.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}
