package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timetable struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CourseID     uuid.UUID   `gorm:"type:uuid;not null" json:"course_id"`
	Course       *Course     `json:"course,omitempty"`
	LecturerID   uuid.UUID   `gorm:"type:uuid;not null" json:"lecturer_id"`
	Lecturer     *Lecturer   `json:"lecturer,omitempty"`
	DepartmentID uuid.UUID   `gorm:"type:uuid;not null" json:"department_id"`
	Department   *Department `json:"department,omitempty"`

	DayOfWeek   string `gorm:"size:10;not null" json:"day_of_week"`
	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	Room        string `gorm:"size:50;not null" json:"room"`
	SessionType string `gorm:"size:20;default:Lecture" json:"session_type"`

	Semester     int    `gorm:"not null" json:"semester"`
	AcademicYear string `gorm:"size:10;not null" json:"academic_year"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	Notes        string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Timetable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Convocation is a standalone graduation record; it references a course by
// code only and carries no account or profile link.
type Convocation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	SerialNo         int    `gorm:"uniqueIndex;not null" json:"serial_no"`
	YearCompleted    int    `gorm:"not null" json:"year_completed"`
	Gender           string `gorm:"size:10;not null" json:"gender"`
	FullName         string `gorm:"size:150;not null" json:"full_name"`
	NameWithInitials string `gorm:"size:100;not null" json:"name_with_initials"`
	StudyMode        string `gorm:"size:20;default:Full Time" json:"study_mode"`
	Address          string `gorm:"type:text;not null" json:"address"`
	ContactNumber    string `gorm:"size:20;not null" json:"contact_number"`
	PaymentStatus    string `gorm:"size:10;default:Pending" json:"payment_status"`
	ExamIndexNo      string `gorm:"size:50;uniqueIndex;not null" json:"exam_index_no"`
	CourseCode       string `gorm:"size:20;not null" json:"course_code"`
	ConvocationYear  int    `json:"convocation_year"`
	Email            *string `gorm:"size:100" json:"email,omitempty"`
	Remarks          *string `gorm:"type:text" json:"remarks,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Convocation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
