package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/pkg/apperror"
)

type ExamResultService interface {
	Create(ctx context.Context, input dto.CreateExamResultInput) (*model.ExamResult, error)
	GetAll(ctx context.Context) ([]*model.ExamResult, error)
	Get(ctx context.Context, id string) (*model.ExamResult, error)
	GetByStudent(ctx context.Context, studentID string) ([]*model.ExamResult, error)
	Update(ctx context.Context, id string, input dto.UpdateExamResultInput) (*model.ExamResult, error)
	Delete(ctx context.Context, id string) error

	// BulkUpload is the exam-result variant of the import engine: rows
	// resolve to existing students and courses, grades are derived from
	// marks, and results upsert on (student, course, year, semester).
	BulkUpload(ctx context.Context, rows []map[string]any) (*dto.ImportSummary, error)
}

type examResultService struct {
	results  repository.ExamResultRepository
	students repository.StudentRepository
	courses  repository.CourseRepository
}

func NewExamResultService(
	results repository.ExamResultRepository,
	students repository.StudentRepository,
	courses repository.CourseRepository,
) ExamResultService {
	return &examResultService{
		results:  results,
		students: students,
		courses:  courses,
	}
}

func (s *examResultService) Create(ctx context.Context, input dto.CreateExamResultInput) (*model.ExamResult, error) {
	student, err := s.students.FindByID(ctx, input.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	course, err := s.courses.FindByID(ctx, input.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.results.FindByKey(ctx, student.ID, course.ID, input.AcademicYear, input.Semester); err == nil {
		return nil, fmt.Errorf("%w: a result for this student, course, year and semester already exists", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	grade, status := CalculateGrade(input.Marks)

	examDate := time.Now()
	if input.ExamDate != nil {
		examDate = *input.ExamDate
	}

	result := &model.ExamResult{
		StudentID:    student.ID,
		CourseID:     course.ID,
		AcademicYear: input.AcademicYear,
		Semester:     input.Semester,
		ExamDate:     examDate,
		Marks:        input.Marks,
		Grade:        grade,
		Status:       status,
		Remarks:      input.Remarks,
	}

	if err := s.results.Create(ctx, result); err != nil {
		return nil, translateWriteError(err)
	}

	return s.results.FindByID(ctx, result.ID.String())
}

func (s *examResultService) GetAll(ctx context.Context) ([]*model.ExamResult, error) {
	return s.results.FindAll(ctx)
}

func (s *examResultService) Get(ctx context.Context, id string) (*model.ExamResult, error) {
	result, err := s.results.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: exam result not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return result, nil
}

func (s *examResultService) GetByStudent(ctx context.Context, studentID string) ([]*model.ExamResult, error) {
	return s.results.FindByStudent(ctx, studentID)
}

func (s *examResultService) Update(ctx context.Context, id string, input dto.UpdateExamResultInput) (*model.ExamResult, error) {
	result, err := s.results.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: exam result not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if input.Marks != nil {
		result.Marks = *input.Marks
		result.Grade, result.Status = CalculateGrade(*input.Marks)
	}
	if input.ExamDate != nil {
		result.ExamDate = *input.ExamDate
	}
	if input.Remarks != nil {
		result.Remarks = input.Remarks
	}

	if err := s.results.Update(ctx, result); err != nil {
		return nil, err
	}

	return s.results.FindByID(ctx, id)
}

func (s *examResultService) Delete(ctx context.Context, id string) error {
	if _, err := s.results.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: exam result not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.results.Delete(ctx, id)
}

func (s *examResultService) BulkUpload(ctx context.Context, rows []map[string]any) (*dto.ImportSummary, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows to import", apperror.ErrInvalidInput)
	}

	details := dto.ImportDetails{
		Success:      []dto.RowOutcome{},
		Created:      []dto.RowOutcome{},
		Updated:      []dto.RowOutcome{},
		Errors:       []dto.RowOutcome{},
		ColumnsFound: rowColumns(rows[0]),
	}

	for i, row := range rows {
		if err := s.processResultRow(ctx, row, i, &details); err != nil {
			details.Errors = append(details.Errors, dto.RowOutcome{
				Row:   i + 2,
				Error: err.Error(),
				Data:  row,
			})
		}
	}

	return &dto.ImportSummary{
		Total:      len(rows),
		Successful: len(details.Success),
		Created:    len(details.Created),
		Updated:    len(details.Updated),
		Failed:     len(details.Errors),
		Details:    details,
	}, nil
}

func (s *examResultService) processResultRow(ctx context.Context, row map[string]any, index int, details *dto.ImportDetails) error {
	studentID := rowValue(row, "StudentID", "Student ID", "studentId", "student_id")
	courseCode := rowValue(row, "CourseCode", "Course Code", "courseCode", "course_code")
	academicYear := rowValue(row, "AcademicYear", "Academic Year", "academicYear", "academic_year")
	semester := rowInt(row, 1, "Semester", "semester", "Sem")
	examDateRaw := rowValue(row, "ExamDate", "Exam Date", "examDate", "exam_date")
	remarks := rowValue(row, "Remarks", "remarks")

	if studentID == "" {
		return errors.New("Student ID is required")
	}
	if courseCode == "" {
		return errors.New("Course Code is required")
	}

	marks, ok := rowFloat(row, "Marks", "marks")
	if !ok || marks < 0 || marks > 100 {
		return errors.New("invalid marks (must be 0-100)")
	}

	// Resolved by business id and course code, never by surrogate key.
	student, err := s.students.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("student not found: %s", studentID)
		}
		return err
	}

	course, err := s.courses.FindByCode(ctx, courseCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("course not found: %s", courseCode)
		}
		return err
	}

	if academicYear == "" {
		academicYear = fmt.Sprintf("%d", time.Now().Year())
	}

	grade, status := CalculateGrade(marks)
	examDate := parseExamDate(examDateRaw)

	outcome := dto.RowOutcome{Row: index + 2, ID: studentID, Name: courseCode}

	result, err := s.results.FindByKey(ctx, student.ID, course.ID, academicYear, semester)
	switch {
	case err == nil:
		result.Marks = marks
		result.Grade = grade
		result.Status = status
		result.ExamDate = examDate
		if remarks != "" {
			result.Remarks = &remarks
		}
		if err := s.results.Update(ctx, result); err != nil {
			return err
		}
		details.Updated = append(details.Updated, outcome)

	case errors.Is(err, gorm.ErrRecordNotFound):
		result = &model.ExamResult{
			StudentID:    student.ID,
			CourseID:     course.ID,
			AcademicYear: academicYear,
			Semester:     semester,
			ExamDate:     examDate,
			Marks:        marks,
			Grade:        grade,
			Status:       status,
		}
		if remarks != "" {
			result.Remarks = &remarks
		}
		if err := s.results.Create(ctx, result); err != nil {
			return translateWriteError(err)
		}
		details.Created = append(details.Created, outcome)

	default:
		return err
	}

	details.Success = append(details.Success, outcome)
	return nil
}

func parseExamDate(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006", "01/02/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}
