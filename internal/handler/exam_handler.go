package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/service"
	"nexora.lk/campuscore/pkg/response"
	"nexora.lk/campuscore/pkg/validator"
)

type ExamResultHandler struct {
	results service.ExamResultService
}

func NewExamResultHandler(results service.ExamResultService) *ExamResultHandler {
	return &ExamResultHandler{results: results}
}

func (h *ExamResultHandler) Create(c *gin.Context) {
	var input dto.CreateExamResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	result, err := h.results.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "exam result created successfully", result)
}

func (h *ExamResultHandler) GetAll(c *gin.Context) {
	results, err := h.results.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, results, len(results))
}

func (h *ExamResultHandler) Get(c *gin.Context) {
	result, err := h.results.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", result)
}

func (h *ExamResultHandler) GetByStudent(c *gin.Context) {
	results, err := h.results.GetByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, results, len(results))
}

func (h *ExamResultHandler) Update(c *gin.Context) {
	var input dto.UpdateExamResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	result, err := h.results.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "exam result updated successfully", result)
}

func (h *ExamResultHandler) Delete(c *gin.Context) {
	if err := h.results.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "exam result deleted successfully", nil)
}

// BulkUpload ingests tabular exam results and answers with the per-row
// reconciliation summary even when some rows failed.
func (h *ExamResultHandler) BulkUpload(c *gin.Context) {
	var req dto.ExamUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	summary, err := h.results.BulkUpload(c.Request.Context(), req.Rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "exam results processed", summary)
}
