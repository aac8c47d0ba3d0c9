package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code        string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	// Back-reference to the current head, set and cleared by the HOD
	// lifecycle inside its transaction.
	HODID *uuid.UUID `gorm:"type:uuid" json:"hod_id,omitempty"`

	EstablishedYear *int    `json:"established_year,omitempty"`
	Building        *string `gorm:"size:100" json:"building,omitempty"`
	OfficePhone     *string `gorm:"size:20" json:"office_phone,omitempty"`
	Email           *string `gorm:"size:100" json:"email,omitempty"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type Course struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseCode string    `gorm:"size:20;uniqueIndex;not null" json:"course_code"`
	CourseName string    `gorm:"size:150;not null" json:"course_name"`

	DepartmentID uuid.UUID   `gorm:"type:uuid;not null" json:"department_id"`
	Department   *Department `json:"department,omitempty"`

	Credits     int    `gorm:"not null" json:"credits"`
	Semester    int    `gorm:"not null" json:"semester"`
	Year        int    `gorm:"not null" json:"year"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	CourseType  string `gorm:"size:20;default:Core" json:"course_type"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	// No cycle check on prerequisites; mirrors the upstream data model.
	Prerequisites []Course `gorm:"many2many:course_prerequisites" json:"prerequisites,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
