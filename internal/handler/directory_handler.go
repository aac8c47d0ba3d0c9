package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/service"
	"nexora.lk/campuscore/pkg/response"
	"nexora.lk/campuscore/pkg/validator"
)

type DepartmentHandler struct {
	directory service.DirectoryService
}

func NewDepartmentHandler(directory service.DirectoryService) *DepartmentHandler {
	return &DepartmentHandler{directory: directory}
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var input dto.CreateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	department, err := h.directory.CreateDepartment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "department created successfully", department)
}

func (h *DepartmentHandler) GetAll(c *gin.Context) {
	departments, err := h.directory.GetDepartments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, departments, len(departments))
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	department, err := h.directory.GetDepartment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", department)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	var input dto.UpdateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	department, err := h.directory.UpdateDepartment(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "department updated successfully", department)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	if err := h.directory.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "department deleted successfully", nil)
}

type CourseHandler struct {
	directory service.DirectoryService
}

func NewCourseHandler(directory service.DirectoryService) *CourseHandler {
	return &CourseHandler{directory: directory}
}

func (h *CourseHandler) Create(c *gin.Context) {
	var input dto.CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	course, err := h.directory.CreateCourse(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "course created successfully", course)
}

func (h *CourseHandler) GetAll(c *gin.Context) {
	courses, err := h.directory.GetCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, courses, len(courses))
}

func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.directory.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	var input dto.UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	course, err := h.directory.UpdateCourse(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "course updated successfully", course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.directory.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "course deleted successfully", nil)
}
