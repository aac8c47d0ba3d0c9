package service

import (
	"context"
	"errors"
	"testing"

	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/pkg/apperror"
)

func TestValidateTimeRange(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid", "09:00", "10:30", false},
		{"end before start", "10:30", "09:00", true},
		{"zero length", "09:00", "09:00", true},
		{"garbage start", "nine", "10:00", true},
		{"garbage end", "09:00", "ten", true},
	}

	for _, tc := range cases {
		err := validateTimeRange(tc.start, tc.end)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: validateTimeRange(%q, %q) = %v", tc.name, tc.start, tc.end, err)
		}
		if err != nil && !errors.Is(err, apperror.ErrInvalidInput) {
			t.Fatalf("%s: got %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestTimetableCreateValidatesReferences(t *testing.T) {
	store := newFakeStore()
	department := store.addDepartment("Information Technology", "IT")
	course := store.addCourse("IT101", "Programming Fundamentals", department.ID)

	lecturerStore := &fakeLecturerRepo{store}
	account := &model.Account{Email: "lec@nexora.lk", Username: "lec", Role: model.RoleLecturer, IsActive: true}
	lecturer := &model.Lecturer{LecturerID: "LC001"}
	if err := lecturerStore.Create(context.Background(), account, lecturer); err != nil {
		t.Fatalf("seed lecturer: %v", err)
	}

	svc := NewTimetableService(
		&fakeTimetableRepo{store: store},
		&fakeCourseRepo{store},
		lecturerStore,
		&fakeDepartmentRepo{store},
	)

	input := dto.CreateTimetableInput{
		CourseID:     course.ID.String(),
		LecturerID:   lecturer.ID.String(),
		DepartmentID: department.ID.String(),
		DayOfWeek:    "Monday",
		StartTime:    "09:00",
		EndTime:      "11:00",
		Room:         "B201",
		Semester:     1,
		AcademicYear: "2025",
	}

	entry, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if entry.SessionType != "Lecture" {
		t.Fatalf("session type = %q, want Lecture default", entry.SessionType)
	}

	bad := input
	bad.LecturerID = "5f0b53b8-0000-4000-8000-000000000000"
	if _, err := svc.Create(context.Background(), bad); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("unknown lecturer: got %v, want ErrNotFound", err)
	}

	inverted := input
	inverted.StartTime = "11:00"
	inverted.EndTime = "09:00"
	if _, err := svc.Create(context.Background(), inverted); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("inverted range: got %v, want ErrInvalidInput", err)
	}
}

func TestConvocationDuplicateExamIndex(t *testing.T) {
	store := newFakeStore()
	department := store.addDepartment("Information Technology", "IT")
	store.addCourse("IT101", "Programming Fundamentals", department.ID)

	svc := NewConvocationService(&fakeConvocationRepo{store: store}, &fakeCourseRepo{store})

	input := dto.CreateConvocationInput{
		SerialNo:         1,
		YearCompleted:    2024,
		Gender:           "Female",
		FullName:         "Nimali Jayawardena",
		NameWithInitials: "N. Jayawardena",
		Address:          "Colombo",
		ContactNumber:    "0771234567",
		ExamIndexNo:      "EX1001",
		CourseCode:       "IT101",
	}

	record, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if record.StudyMode != "Full Time" || record.PaymentStatus != "Pending" {
		t.Fatalf("defaults not applied: %q/%q", record.StudyMode, record.PaymentStatus)
	}

	input.SerialNo = 2
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}

	input.ExamIndexNo = "EX1002"
	input.CourseCode = "XX999"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("unknown course: got %v, want ErrNotFound", err)
	}
}
