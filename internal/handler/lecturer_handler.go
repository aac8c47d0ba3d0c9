package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/service"
	"nexora.lk/campuscore/pkg/response"
	"nexora.lk/campuscore/pkg/validator"
)

type LecturerHandler struct {
	lecturers service.LecturerService
}

func NewLecturerHandler(lecturers service.LecturerService) *LecturerHandler {
	return &LecturerHandler{lecturers: lecturers}
}

func (h *LecturerHandler) Create(c *gin.Context) {
	var input dto.CreateLecturerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	lecturer, err := h.lecturers.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "lecturer created successfully", lecturer)
}

func (h *LecturerHandler) GetAll(c *gin.Context) {
	lecturers, err := h.lecturers.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, lecturers, len(lecturers))
}

func (h *LecturerHandler) Get(c *gin.Context) {
	lecturer, err := h.lecturers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", lecturer)
}

func (h *LecturerHandler) Update(c *gin.Context) {
	var input dto.UpdateLecturerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	lecturer, err := h.lecturers.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "lecturer updated successfully", lecturer)
}

func (h *LecturerHandler) Delete(c *gin.Context) {
	if err := h.lecturers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "lecturer deleted successfully", nil)
}
