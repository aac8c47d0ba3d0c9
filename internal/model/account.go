package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of login roles. Profiles fix the role of their
// paired account; admin and director exist only as standalone accounts.
type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RoleHOD      Role = "hod"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleHOD, RoleStaff, RoleAdmin, RoleDirector:
		return true
	}
	return false
}

// Satisfies reports whether an account with role r passes a gate that
// allows any of the given roles. A gate that allows admin also admits
// director.
func (r Role) Satisfies(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
		if a == RoleAdmin && r == RoleDirector {
			return true
		}
	}
	return false
}

// Elevated reports whether the role is subject to the single-session
// termination notice on re-login.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleDirector
}

type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null" json:"role"`
	FirstName    string    `gorm:"size:50;not null" json:"first_name"`
	LastName     string    `gorm:"size:50;not null" json:"last_name"`
	NIC          *string   `gorm:"size:20" json:"nic,omitempty"`
	Phone        *string   `gorm:"size:20" json:"phone,omitempty"`
	Address      *string   `gorm:"type:text" json:"address,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	// Session state: the one currently-valid session id, rotated on every
	// successful login. Requests carrying an older id are rejected lazily
	// at their next authenticated call.
	CurrentSessionID *string    `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP      *string    `gorm:"size:45" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
