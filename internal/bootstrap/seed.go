package bootstrap

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.Department{},
		&model.Course{},
		&model.Student{},
		&model.Lecturer{},
		&model.HOD{},
		&model.Staff{},
		&model.ExamResult{},
		&model.Timetable{},
		&model.Convocation{},
	)
}

// SeedAccounts guarantees the admin and director logins exist so a fresh
// database is operable. Existing accounts are left alone.
func SeedAccounts(db *gorm.DB) error {
	seeds := []struct {
		username string
		email    string
		password string
		role     model.Role
		first    string
		last     string
	}{
		{"admin", "admin@nexora.lk", "admin123", model.RoleAdmin, "System", "Administrator"},
		{"director", "director@nexora.lk", "director123", model.RoleDirector, "Campus", "Director"},
	}

	for _, seed := range seeds {
		var count int64
		if err := db.Model(&model.Account{}).
			Where("email = ?", seed.email).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		account := model.Account{
			Username:     seed.username,
			Email:        seed.email,
			PasswordHash: string(hash),
			Role:         seed.role,
			FirstName:    seed.first,
			LastName:     seed.last,
			IsActive:     true,
		}

		if err := db.Create(&account).Error; err != nil {
			return err
		}

		log.Printf("seeded %s account (%s)", seed.role, seed.email)
	}

	return nil
}

// SeedDepartments loads a starter directory so imports that resolve
// departments by name have something to hit in development.
func SeedDepartments(db *gorm.DB) error {
	defaults := []model.Department{
		{Name: "Information Technology", Code: "IT", IsActive: true},
		{Name: "Business Management", Code: "BM", IsActive: true},
		{Name: "Engineering", Code: "ENG", IsActive: true},
	}

	for _, department := range defaults {
		var count int64
		if err := db.Model(&model.Department{}).
			Where("code = ?", department.Code).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&department).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
