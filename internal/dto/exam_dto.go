package dto

import "time"

type CreateExamResultInput struct {
	StudentID    string     `json:"student_id" binding:"required,uuid"`
	CourseID     string     `json:"course_id" binding:"required,uuid"`
	AcademicYear string     `json:"academic_year" binding:"required"`
	Semester     int        `json:"semester" binding:"required,min=1,max=8"`
	ExamDate     *time.Time `json:"exam_date"`
	Marks        float64    `json:"marks" binding:"min=0,max=100"`
	Remarks      *string    `json:"remarks"`
}

type UpdateExamResultInput struct {
	Marks    *float64   `json:"marks" binding:"omitempty,min=0,max=100"`
	ExamDate *time.Time `json:"exam_date"`
	Remarks  *string    `json:"remarks"`
}
