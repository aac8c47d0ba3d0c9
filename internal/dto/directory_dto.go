package dto

type CreateDepartmentInput struct {
	Name            string  `json:"name" binding:"required"`
	Code            string  `json:"code" binding:"required,max=20"`
	Description     string  `json:"description"`
	EstablishedYear *int    `json:"established_year"`
	Building        *string `json:"building"`
	OfficePhone     *string `json:"office_phone"`
	Email           *string `json:"email" binding:"omitempty,email"`
}

type UpdateDepartmentInput struct {
	Name            *string `json:"name"`
	Code            *string `json:"code" binding:"omitempty,max=20"`
	Description     *string `json:"description"`
	EstablishedYear *int    `json:"established_year"`
	Building        *string `json:"building"`
	OfficePhone     *string `json:"office_phone"`
	Email           *string `json:"email" binding:"omitempty,email"`
	IsActive        *bool   `json:"is_active"`
}

type CreateCourseInput struct {
	CourseCode      string   `json:"course_code" binding:"required,max=20"`
	CourseName      string   `json:"course_name" binding:"required"`
	DepartmentID    string   `json:"department_id" binding:"required,uuid"`
	Credits         int      `json:"credits" binding:"required,min=1,max=6"`
	Semester        int      `json:"semester" binding:"required,min=1,max=8"`
	Year            int      `json:"year" binding:"required,min=1,max=4"`
	Description     string   `json:"description"`
	CourseType      string   `json:"course_type" binding:"omitempty,oneof=Core Elective Optional"`
	PrerequisiteIDs []string `json:"prerequisite_ids" binding:"omitempty,dive,uuid"`
}

type UpdateCourseInput struct {
	CourseName      *string  `json:"course_name"`
	DepartmentID    *string  `json:"department_id" binding:"omitempty,uuid"`
	Credits         *int     `json:"credits" binding:"omitempty,min=1,max=6"`
	Semester        *int     `json:"semester" binding:"omitempty,min=1,max=8"`
	Year            *int     `json:"year" binding:"omitempty,min=1,max=4"`
	Description     *string  `json:"description"`
	CourseType      *string  `json:"course_type" binding:"omitempty,oneof=Core Elective Optional"`
	IsActive        *bool    `json:"is_active"`
	PrerequisiteIDs []string `json:"prerequisite_ids" binding:"omitempty,dive,uuid"`
}
