package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/service"
	"nexora.lk/campuscore/pkg/response"
	"nexora.lk/campuscore/pkg/validator"
)

type ImportHandler struct {
	importer service.ImportService
}

func NewImportHandler(importer service.ImportService) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// Import reconciles a batch of profile rows. Row-level failures land in
// the summary, not in the HTTP status.
func (h *ImportHandler) Import(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	summary, err := h.importer.Import(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "import processed", summary)
}
