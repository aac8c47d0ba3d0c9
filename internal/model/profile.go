package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Each profile variant is a 1:1 extension of exactly one Account. The
// account never references the profile back; deleting a profile deletes
// its account in the same transaction (see repository layer).

type Student struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	Account   Account   `gorm:"constraint:OnDelete:CASCADE" json:"account"`

	StudentID          string `gorm:"size:50;uniqueIndex;not null" json:"student_id"`
	RegistrationNumber string `gorm:"size:50;uniqueIndex;not null" json:"registration_number"`

	CourseID     *uuid.UUID  `gorm:"type:uuid" json:"course_id,omitempty"`
	Course       *Course     `json:"course,omitempty"`
	DepartmentID *uuid.UUID  `gorm:"type:uuid" json:"department_id,omitempty"`
	Department   *Department `json:"department,omitempty"`

	Batch          string    `gorm:"size:20" json:"batch"`
	YearOfStudy    int       `gorm:"default:1" json:"year_of_study"`
	Semester       int       `gorm:"default:1" json:"semester"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	AcademicStatus string    `gorm:"size:20;default:active" json:"academic_status"`
	GPA            float64   `gorm:"default:0" json:"gpa"`
	Attendance     float64   `gorm:"default:0" json:"attendance"`
	GuardianName   *string   `gorm:"size:100" json:"guardian_name,omitempty"`
	GuardianPhone  *string   `gorm:"size:20" json:"guardian_phone,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Lecturer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	Account   Account   `gorm:"constraint:OnDelete:CASCADE" json:"account"`

	LecturerID string `gorm:"size:50;uniqueIndex;not null" json:"lecturer_id"`

	DepartmentID *uuid.UUID  `gorm:"type:uuid" json:"department_id,omitempty"`
	Department   *Department `json:"department,omitempty"`

	Designation       string     `gorm:"size:50;default:Lecturer" json:"designation"`
	Qualification     string     `gorm:"size:100" json:"qualification"`
	Specialization    string     `gorm:"size:100" json:"specialization"`
	YearsOfExperience int        `gorm:"default:0" json:"years_of_experience"`
	JoinDate          *time.Time `json:"join_date,omitempty"`
	OfficeRoom        *string    `gorm:"size:50" json:"office_room,omitempty"`
	EmploymentType    string     `gorm:"size:20;default:Full-time" json:"employment_type"`

	CoursesTaught []Course `gorm:"many2many:lecturer_courses" json:"courses_taught,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (l *Lecturer) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// HOD is the head of a department. The unique index on DepartmentID is
// the final arbiter of the one-head-per-department rule; the service
// precheck only exists to fail early with a friendly conflict message.
type HOD struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	Account   Account   `gorm:"constraint:OnDelete:CASCADE" json:"account"`

	HODID string `gorm:"size:50;uniqueIndex;not null" json:"hod_id"`

	DepartmentID uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"department_id"`
	Department   *Department `json:"department,omitempty"`

	Designation     string     `gorm:"size:50;default:Head of Department" json:"designation"`
	Qualification   string     `gorm:"size:100" json:"qualification"`
	Specialization  string     `gorm:"size:100" json:"specialization"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	OfficeRoom      *string    `gorm:"size:50" json:"office_room,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (h *HOD) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

type Staff struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	Account   Account   `gorm:"constraint:OnDelete:CASCADE" json:"account"`

	StaffID string `gorm:"size:50;uniqueIndex;not null" json:"staff_id"`

	DepartmentID *uuid.UUID  `gorm:"type:uuid" json:"department_id,omitempty"`
	Department   *Department `json:"department,omitempty"`

	Position       string     `gorm:"size:100;default:Staff Member" json:"position"`
	StaffType      string     `gorm:"size:20;default:Administrative" json:"staff_type"`
	JoinDate       *time.Time `json:"join_date,omitempty"`
	OfficeRoom     *string    `gorm:"size:50" json:"office_room,omitempty"`
	EmploymentType string     `gorm:"size:20;default:Full-time" json:"employment_type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
