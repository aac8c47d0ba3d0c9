package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/service"
	"nexora.lk/campuscore/pkg/response"
	"nexora.lk/campuscore/pkg/validator"
)

type HODHandler struct {
	hods service.HODService
}

func NewHODHandler(hods service.HODService) *HODHandler {
	return &HODHandler{hods: hods}
}

func (h *HODHandler) Create(c *gin.Context) {
	var input dto.CreateHODInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	hod, err := h.hods.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "head of department created successfully", hod)
}

func (h *HODHandler) GetAll(c *gin.Context) {
	hods, err := h.hods.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, hods, len(hods))
}

func (h *HODHandler) Get(c *gin.Context) {
	hod, err := h.hods.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", hod)
}

func (h *HODHandler) Update(c *gin.Context) {
	var input dto.UpdateHODInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	hod, err := h.hods.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "head of department updated successfully", hod)
}

func (h *HODHandler) Delete(c *gin.Context) {
	if err := h.hods.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "head of department deleted successfully", nil)
}
