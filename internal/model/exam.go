package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamResult struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exam_result_key" json:"student_id"`
	Student   *Student  `json:"student,omitempty"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exam_result_key" json:"course_id"`
	Course    *Course   `json:"course,omitempty"`

	AcademicYear string    `gorm:"size:10;not null;uniqueIndex:idx_exam_result_key" json:"academic_year"`
	Semester     int       `gorm:"not null;uniqueIndex:idx_exam_result_key" json:"semester"`
	ExamDate     time.Time `json:"exam_date"`

	Marks  float64 `gorm:"not null" json:"marks"`
	Grade  string  `gorm:"size:2;not null" json:"grade"`
	Status string  `gorm:"size:10;default:Pass" json:"status"`

	Remarks *string `gorm:"type:text" json:"remarks,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *ExamResult) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
