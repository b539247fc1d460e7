package http

import (
	"github.com/gin-gonic/gin"

	"personal-fitness-trainer/pkg/response"
)

// ListModes godoc
// @Summary     List trainer modes
// @Description Returns the available modes with their labels, hints and expected input kind.
// @Tags        Trainer
// @Produce     json
// @Success     200 {object} listModesResp
// @Router      /api/v1/trainer/modes [GET]
func (h *handler) ListModes(c *gin.Context) {
	response.OK(c, h.newListModesResp(h.uc.Modes()))
}

// Analyze godoc
// @Summary     Run a trainer mode
// @Description Text modes take a JSON body {"text": "..."}; body-analysis takes a multipart "image" file (jpg/png).
// @Tags        Trainer
// @Accept      json
// @Accept      multipart/form-data
// @Produce     json
// @Param       mode  path     string         true  "Mode (body-analysis, workout-plan, nutrition-plan, fitness-tips)"
// @Param       body  body     analyzeTextReq false "User text for text modes"
// @Param       image formData file           false "Full-body picture for body-analysis"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown mode"
// @Failure     413 {object} response.Resp "Image too large"
// @Failure     415 {object} response.Resp "Unsupported image type"
// @Failure     502 {object} response.Resp "Model rejected the request"
// @Failure     503 {object} response.Resp "Model unavailable"
// @Router      /api/v1/trainer/analyses/{mode} [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "trainer.delivery.http.Analyze: processAnalyzeReq: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "trainer.delivery.http.Analyze: uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}
