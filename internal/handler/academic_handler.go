package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/service"
	"nexora.lk/campuscore/pkg/response"
	"nexora.lk/campuscore/pkg/validator"
)

type TimetableHandler struct {
	timetables service.TimetableService
}

func NewTimetableHandler(timetables service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetables: timetables}
}

func (h *TimetableHandler) Create(c *gin.Context) {
	var input dto.CreateTimetableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	entry, err := h.timetables.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "timetable entry created successfully", entry)
}

func (h *TimetableHandler) GetAll(c *gin.Context) {
	if departmentID := c.Query("department_id"); departmentID != "" {
		entries, err := h.timetables.GetByDepartment(c.Request.Context(), departmentID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.List(c, entries, len(entries))
		return
	}

	entries, err := h.timetables.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, entries, len(entries))
}

func (h *TimetableHandler) Get(c *gin.Context) {
	entry, err := h.timetables.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", entry)
}

func (h *TimetableHandler) Update(c *gin.Context) {
	var input dto.UpdateTimetableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	entry, err := h.timetables.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "timetable entry updated successfully", entry)
}

func (h *TimetableHandler) Delete(c *gin.Context) {
	if err := h.timetables.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "timetable entry deleted successfully", nil)
}

type ConvocationHandler struct {
	records service.ConvocationService
}

func NewConvocationHandler(records service.ConvocationService) *ConvocationHandler {
	return &ConvocationHandler{records: records}
}

func (h *ConvocationHandler) Create(c *gin.Context) {
	var input dto.CreateConvocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	record, err := h.records.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "convocation record created successfully", record)
}

func (h *ConvocationHandler) GetAll(c *gin.Context) {
	records, err := h.records.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, records, len(records))
}

func (h *ConvocationHandler) Get(c *gin.Context) {
	record, err := h.records.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", record)
}

func (h *ConvocationHandler) Update(c *gin.Context) {
	var input dto.UpdateConvocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	record, err := h.records.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "convocation record updated successfully", record)
}

func (h *ConvocationHandler) Delete(c *gin.Context) {
	if err := h.records.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "convocation record deleted successfully", nil)
}
