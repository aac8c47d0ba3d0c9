package service

import (
	"context"
	"errors"
	"testing"

	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/pkg/apperror"
)

func newTestDirectoryService(store *fakeStore) DirectoryService {
	return NewDirectoryService(&fakeDepartmentRepo{store}, &fakeCourseRepo{store})
}

func TestDepartmentCreateAndDuplicateName(t *testing.T) {
	store := newFakeStore()
	svc := newTestDirectoryService(store)

	department, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentInput{
		Name: "Information Technology",
		Code: "it",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if department.Code != "IT" {
		t.Fatalf("code = %q, want IT", department.Code)
	}
	if !department.IsActive {
		t.Fatal("new department should be active")
	}

	_, err = svc.CreateDepartment(context.Background(), dto.CreateDepartmentInput{
		Name: "Information Technology",
		Code: "IT2",
	})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestCourseCreateResolvesPrerequisites(t *testing.T) {
	store := newFakeStore()
	department := store.addDepartment("Information Technology", "IT")
	basics := store.addCourse("IT101", "Programming Fundamentals", department.ID)
	svc := newTestDirectoryService(store)

	course, err := svc.CreateCourse(context.Background(), dto.CreateCourseInput{
		CourseCode:      "it202",
		CourseName:      "Data Structures",
		DepartmentID:    department.ID.String(),
		Credits:         3,
		Semester:        2,
		Year:            1,
		PrerequisiteIDs: []string{basics.ID.String()},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if course.CourseCode != "IT202" {
		t.Fatalf("course code = %q, want IT202", course.CourseCode)
	}
	if course.CourseType != "Core" {
		t.Fatalf("course type = %q, want Core default", course.CourseType)
	}

	stored := store.courses[course.ID]
	if len(stored.Prerequisites) != 1 || stored.Prerequisites[0].ID != basics.ID {
		t.Fatal("prerequisites not attached")
	}
}

func TestCourseCreateDuplicateCode(t *testing.T) {
	store := newFakeStore()
	department := store.addDepartment("Information Technology", "IT")
	store.addCourse("IT101", "Programming Fundamentals", department.ID)
	svc := newTestDirectoryService(store)

	_, err := svc.CreateCourse(context.Background(), dto.CreateCourseInput{
		CourseCode:   "IT101",
		CourseName:   "Another Course",
		DepartmentID: department.ID.String(),
		Credits:      3,
		Semester:     1,
		Year:         1,
	})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestCourseCreateUnknownPrerequisite(t *testing.T) {
	store := newFakeStore()
	department := store.addDepartment("Information Technology", "IT")
	svc := newTestDirectoryService(store)

	_, err := svc.CreateCourse(context.Background(), dto.CreateCourseInput{
		CourseCode:      "IT202",
		CourseName:      "Data Structures",
		DepartmentID:    department.ID.String(),
		Credits:         3,
		Semester:        2,
		Year:            1,
		PrerequisiteIDs: []string{"5f0b53b8-0000-4000-8000-000000000000"},
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDepartmentGetUnknown(t *testing.T) {
	svc := newTestDirectoryService(newFakeStore())

	_, err := svc.GetDepartment(context.Background(), "5f0b53b8-0000-4000-8000-000000000000")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
