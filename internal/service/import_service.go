package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/dto"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/repository"
	"nexora.lk/campuscore/pkg/apperror"
)

// Accounts auto-created during import get a role-named default password.
// Operators must communicate these and force a change on first login.
var defaultPasswords = map[model.Role]string{
	model.RoleStudent:  "student123",
	model.RoleLecturer: "lecturer123",
	model.RoleHOD:      "hod123",
	model.RoleStaff:    "staff123",
}

type ImportService interface {
	// Import reconciles each row independently into accounts, profiles
	// and directory references. A bad row lands in the errors list and
	// never aborts the batch.
	Import(ctx context.Context, req dto.ImportRequest) (*dto.ImportSummary, error)
}

type importService struct {
	students    repository.StudentRepository
	lecturers   repository.LecturerRepository
	hods        repository.HODRepository
	staff       repository.StaffRepository
	accounts    repository.AccountRepository
	departments repository.DepartmentRepository
	courses     repository.CourseRepository
}

func NewImportService(
	students repository.StudentRepository,
	lecturers repository.LecturerRepository,
	hods repository.HODRepository,
	staff repository.StaffRepository,
	accounts repository.AccountRepository,
	departments repository.DepartmentRepository,
	courses repository.CourseRepository,
) ImportService {
	return &importService{
		students:    students,
		lecturers:   lecturers,
		hods:        hods,
		staff:       staff,
		accounts:    accounts,
		departments: departments,
		courses:     courses,
	}
}

func (s *importService) Import(ctx context.Context, req dto.ImportRequest) (*dto.ImportSummary, error) {
	if len(req.Rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows to import", apperror.ErrInvalidInput)
	}

	details := dto.ImportDetails{
		Success:      []dto.RowOutcome{},
		Created:      []dto.RowOutcome{},
		Updated:      []dto.RowOutcome{},
		Errors:       []dto.RowOutcome{},
		ColumnsFound: rowColumns(req.Rows[0]),
	}

	for i, row := range req.Rows {
		var err error
		switch req.EntityType {
		case "students":
			err = s.processStudentRow(ctx, row, i, &details)
		case "lecturers":
			err = s.processLecturerRow(ctx, row, i, &details)
		case "hod":
			err = s.processHODRow(ctx, row, i, &details)
		case "staff":
			err = s.processStaffRow(ctx, row, i, &details)
		default:
			return nil, fmt.Errorf("%w: unknown entity type %q", apperror.ErrInvalidInput, req.EntityType)
		}

		if err != nil {
			// Row numbers are +2: 1-based plus the header row.
			details.Errors = append(details.Errors, dto.RowOutcome{
				Row:   i + 2,
				Error: err.Error(),
				Data:  row,
			})
		}
	}

	return &dto.ImportSummary{
		Total:      len(req.Rows),
		Successful: len(details.Success),
		Created:    len(details.Created),
		Updated:    len(details.Updated),
		Failed:     len(details.Errors),
		Details:    details,
	}, nil
}

// requireFields builds the original backend's diagnostic message listing
// both the missing logical fields and the columns actually present.
func requireFields(row map[string]any, fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required fields: %s. Available columns: %s",
		strings.Join(missing, ", "), strings.Join(rowColumns(row), ", "))
}

func (s *importService) resolveDepartment(ctx context.Context, name string) (*model.Department, error) {
	department, err := s.departments.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("department not found: %s", name)
		}
		return nil, err
	}
	return department, nil
}

func (s *importService) resolveCourse(ctx context.Context, code string) (*model.Course, error) {
	course, err := s.courses.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course not found: %s", code)
		}
		return nil, err
	}
	return course, nil
}

// matchOrCreateAccount reuses the account carrying the row's email, or
// creates one with the variant's default password.
func (s *importService) matchOrCreateAccount(ctx context.Context, role model.Role, firstName, lastName, email, phone string) (*model.Account, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPasswords[role]), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	account = &model.Account{
		Username:     usernameFromEmail(email),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
	}
	if phone != "" {
		account.Phone = &phone
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, translateWriteError(err)
	}
	return account, nil
}

// updateAccountContact pushes the row's contact fields through to the
// paired account of an existing profile.
func updateAccountContact(account *model.Account, firstName, lastName, email, phone string) {
	account.FirstName = firstName
	account.LastName = lastName
	account.Email = email
	if phone != "" {
		account.Phone = &phone
	}
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func (s *importService) processStudentRow(ctx context.Context, row map[string]any, index int, details *dto.ImportDetails) error {
	studentID := rowValue(row, "StudentID", "Student ID", "studentId", "student_id", "STUDENT ID", "Student Id")
	firstName := rowValue(row, "FirstName", "First Name", "firstName", "first_name", "FIRST NAME", "First name")
	lastName := rowValue(row, "LastName", "Last Name", "lastName", "last_name", "LAST NAME", "Last name")
	email := rowValue(row, "Email", "email", "EMAIL", "E-mail", "e-mail")
	phone := rowValue(row, "Phone", "phone", "PHONE", "Phone Number", "phone_number", "Contact")
	regNumber := rowValue(row, "RegistrationNumber", "Registration Number", "registrationNumber", "registration_number", "RegNumber", "Reg Number", "Registration No", "Reg No")
	courseCode := rowValue(row, "CourseCode", "Course Code", "courseCode", "course_code", "Course")
	departmentName := rowValue(row, "Department", "department", "DEPARTMENT", "Dept", "dept")
	batch := rowValue(row, "Batch", "batch", "BATCH", "Year")
	yearOfStudy := rowInt(row, 1, "YearOfStudy", "Year of Study", "yearOfStudy", "year_of_study", "Year", "Level")
	semester := rowInt(row, 1, "Semester", "semester", "SEMESTER", "Sem")

	if err := requireFields(row, map[string]string{
		"StudentID": studentID,
		"FirstName": firstName,
		"LastName":  lastName,
		"Email":     email,
	}); err != nil {
		return err
	}

	var course *model.Course
	var department *model.Department
	var err error
	if courseCode != "" {
		if course, err = s.resolveCourse(ctx, courseCode); err != nil {
			return err
		}
	}
	if departmentName != "" {
		if department, err = s.resolveDepartment(ctx, departmentName); err != nil {
			return err
		}
	}

	name := firstName + " " + lastName

	student, err := s.students.FindByStudentID(ctx, studentID)
	switch {
	case err == nil:
		updateAccountContact(&student.Account, firstName, lastName, email, phone)
		if regNumber != "" {
			student.RegistrationNumber = regNumber
		}
		if course != nil {
			student.CourseID = &course.ID
		}
		if department != nil {
			student.DepartmentID = &department.ID
		}
		if batch != "" {
			student.Batch = batch
		}
		student.YearOfStudy = yearOfStudy
		student.Semester = semester

		if err := s.students.Update(ctx, student, &student.Account); err != nil {
			return translateWriteError(err)
		}
		details.Updated = append(details.Updated, dto.RowOutcome{Row: index + 2, ID: studentID, Name: name})

	case errors.Is(err, gorm.ErrRecordNotFound):
		account, err := s.matchOrCreateAccount(ctx, model.RoleStudent, firstName, lastName, email, phone)
		if err != nil {
			return err
		}

		if regNumber == "" {
			regNumber = studentID
		}
		if batch == "" {
			batch = fmt.Sprintf("%d", time.Now().Year())
		}

		student = &model.Student{
			AccountID:          account.ID,
			StudentID:          studentID,
			RegistrationNumber: regNumber,
			Batch:              batch,
			YearOfStudy:        yearOfStudy,
			Semester:           semester,
			EnrollmentDate:     time.Now(),
			AcademicStatus:     "active",
		}
		if course != nil {
			student.CourseID = &course.ID
		}
		if department != nil {
			student.DepartmentID = &department.ID
		}

		if err := s.students.CreateProfile(ctx, student); err != nil {
			return translateWriteError(err)
		}
		details.Created = append(details.Created, dto.RowOutcome{Row: index + 2, ID: studentID, Name: name})

	default:
		return err
	}

	details.Success = append(details.Success, dto.RowOutcome{Row: index + 2, ID: studentID, Name: name})
	return nil
}

func (s *importService) processLecturerRow(ctx context.Context, row map[string]any, index int, details *dto.ImportDetails) error {
	lecturerID := rowValue(row, "LecturerID", "Lecturer ID", "lecturerId", "lecturer_id", "EmployeeID", "Employee ID", "employeeId")
	firstName := rowValue(row, "FirstName", "First Name", "firstName", "first_name", "FIRST NAME")
	lastName := rowValue(row, "LastName", "Last Name", "lastName", "last_name", "LAST NAME")
	email := rowValue(row, "Email", "email", "EMAIL", "E-mail")
	phone := rowValue(row, "Phone", "phone", "PHONE", "Phone Number", "Contact")
	departmentName := rowValue(row, "Department", "department", "DEPARTMENT", "Dept")
	qualification := rowValue(row, "Qualification", "qualification", "QUALIFICATION", "Degree")
	specialization := rowValue(row, "Specialization", "specialization", "SPECIALIZATION", "Specialty", "Field")
	experience := rowInt(row, 0, "Experience", "experience", "EXPERIENCE", "Years of Experience", "Exp")

	if err := requireFields(row, map[string]string{
		"LecturerID": lecturerID,
		"FirstName":  firstName,
		"LastName":   lastName,
		"Email":      email,
	}); err != nil {
		return err
	}

	var department *model.Department
	var err error
	if departmentName != "" {
		if department, err = s.resolveDepartment(ctx, departmentName); err != nil {
			return err
		}
	}

	name := firstName + " " + lastName

	lecturer, err := s.lecturers.FindByLecturerID(ctx, lecturerID)
	switch {
	case err == nil:
		updateAccountContact(&lecturer.Account, firstName, lastName, email, phone)
		if department != nil {
			lecturer.DepartmentID = &department.ID
		}
		if qualification != "" {
			lecturer.Qualification = qualification
		}
		if specialization != "" {
			lecturer.Specialization = specialization
		}
		lecturer.YearsOfExperience = experience

		if err := s.lecturers.Update(ctx, lecturer, &lecturer.Account); err != nil {
			return translateWriteError(err)
		}
		details.Updated = append(details.Updated, dto.RowOutcome{Row: index + 2, ID: lecturerID, Name: name})

	case errors.Is(err, gorm.ErrRecordNotFound):
		account, err := s.matchOrCreateAccount(ctx, model.RoleLecturer, firstName, lastName, email, phone)
		if err != nil {
			return err
		}

		if qualification == "" {
			qualification = "BSc"
		}
		if specialization == "" {
			specialization = "General"
		}

		lecturer = &model.Lecturer{
			AccountID:         account.ID,
			LecturerID:        lecturerID,
			Designation:       "Lecturer",
			Qualification:     qualification,
			Specialization:    specialization,
			YearsOfExperience: experience,
			EmploymentType:    "Full-time",
		}
		if department != nil {
			lecturer.DepartmentID = &department.ID
		}

		if err := s.lecturers.CreateProfile(ctx, lecturer); err != nil {
			return translateWriteError(err)
		}
		details.Created = append(details.Created, dto.RowOutcome{Row: index + 2, ID: lecturerID, Name: name})

	default:
		return err
	}

	details.Success = append(details.Success, dto.RowOutcome{Row: index + 2, ID: lecturerID, Name: name})
	return nil
}

func (s *importService) processHODRow(ctx context.Context, row map[string]any, index int, details *dto.ImportDetails) error {
	hodID := rowValue(row, "EmployeeID", "Employee ID", "employeeId", "employee_id", "EMPLOYEE ID", "HODID", "HOD ID")
	firstName := rowValue(row, "FirstName", "First Name", "firstName", "first_name", "FIRST NAME")
	lastName := rowValue(row, "LastName", "Last Name", "lastName", "last_name", "LAST NAME")
	email := rowValue(row, "Email", "email", "EMAIL", "E-mail")
	phone := rowValue(row, "Phone", "phone", "PHONE", "Phone Number", "Contact")
	departmentName := rowValue(row, "Department", "department", "DEPARTMENT", "Dept")
	qualification := rowValue(row, "Qualification", "qualification", "QUALIFICATION", "Degree")
	specialization := rowValue(row, "Specialization", "specialization", "SPECIALIZATION", "Specialty")

	// Department is required for HOD rows: the profile is meaningless
	// without the department it heads.
	if err := requireFields(row, map[string]string{
		"EmployeeID": hodID,
		"FirstName":  firstName,
		"LastName":   lastName,
		"Email":      email,
		"Department": departmentName,
	}); err != nil {
		return err
	}

	department, err := s.resolveDepartment(ctx, departmentName)
	if err != nil {
		return err
	}

	name := firstName + " " + lastName

	hod, err := s.hods.FindByHODID(ctx, hodID)
	switch {
	case err == nil:
		updateAccountContact(&hod.Account, firstName, lastName, email, phone)
		hod.DepartmentID = department.ID
		if qualification != "" {
			hod.Qualification = qualification
		}
		if specialization != "" {
			hod.Specialization = specialization
		}

		if err := s.hods.Update(ctx, hod, &hod.Account); err != nil {
			return translateWriteError(err)
		}
		details.Updated = append(details.Updated, dto.RowOutcome{Row: index + 2, ID: hodID, Name: name})

	case errors.Is(err, gorm.ErrRecordNotFound):
		account, err := s.matchOrCreateAccount(ctx, model.RoleHOD, firstName, lastName, email, phone)
		if err != nil {
			return err
		}

		if qualification == "" {
			qualification = "MSc"
		}
		if specialization == "" {
			specialization = "General"
		}

		hod = &model.HOD{
			AccountID:      account.ID,
			HODID:          hodID,
			DepartmentID:   department.ID,
			Designation:    "Head of Department",
			Qualification:  qualification,
			Specialization: specialization,
		}

		if err := s.hods.CreateProfile(ctx, hod); err != nil {
			return translateWriteError(err)
		}
		details.Created = append(details.Created, dto.RowOutcome{Row: index + 2, ID: hodID, Name: name})

	default:
		return err
	}

	details.Success = append(details.Success, dto.RowOutcome{Row: index + 2, ID: hodID, Name: name})
	return nil
}

func (s *importService) processStaffRow(ctx context.Context, row map[string]any, index int, details *dto.ImportDetails) error {
	staffID := rowValue(row, "EmployeeID", "Employee ID", "employeeId", "employee_id", "EMPLOYEE ID", "StaffID", "Staff ID")
	firstName := rowValue(row, "FirstName", "First Name", "firstName", "first_name", "FIRST NAME")
	lastName := rowValue(row, "LastName", "Last Name", "lastName", "last_name", "LAST NAME")
	email := rowValue(row, "Email", "email", "EMAIL", "E-mail")
	phone := rowValue(row, "Phone", "phone", "PHONE", "Phone Number", "Contact")
	departmentName := rowValue(row, "Department", "department", "DEPARTMENT", "Dept")
	position := rowValue(row, "Position", "position", "POSITION", "Job Title", "Title")
	staffType := rowValue(row, "StaffType", "Staff Type", "staffType", "staff_type", "Type")

	if err := requireFields(row, map[string]string{
		"StaffID":   staffID,
		"FirstName": firstName,
		"LastName":  lastName,
		"Email":     email,
	}); err != nil {
		return err
	}

	var department *model.Department
	var err error
	if departmentName != "" {
		if department, err = s.resolveDepartment(ctx, departmentName); err != nil {
			return err
		}
	}

	if staffType == "" {
		staffType = "Administrative"
	}

	name := firstName + " " + lastName

	staff, err := s.staff.FindByStaffID(ctx, staffID)
	switch {
	case err == nil:
		updateAccountContact(&staff.Account, firstName, lastName, email, phone)
		if department != nil {
			staff.DepartmentID = &department.ID
		}
		if position != "" {
			staff.Position = position
		}
		staff.StaffType = staffType

		if err := s.staff.Update(ctx, staff, &staff.Account); err != nil {
			return translateWriteError(err)
		}
		details.Updated = append(details.Updated, dto.RowOutcome{Row: index + 2, ID: staffID, Name: name})

	case errors.Is(err, gorm.ErrRecordNotFound):
		account, err := s.matchOrCreateAccount(ctx, model.RoleStaff, firstName, lastName, email, phone)
		if err != nil {
			return err
		}

		if position == "" {
			position = "Staff Member"
		}

		staff = &model.Staff{
			AccountID:      account.ID,
			StaffID:        staffID,
			Position:       position,
			StaffType:      staffType,
			EmploymentType: "Full-time",
		}
		if department != nil {
			staff.DepartmentID = &department.ID
		}

		if err := s.staff.CreateProfile(ctx, staff); err != nil {
			return translateWriteError(err)
		}
		details.Created = append(details.Created, dto.RowOutcome{Row: index + 2, ID: staffID, Name: name})

	default:
		return err
	}

	details.Success = append(details.Success, dto.RowOutcome{Row: index + 2, ID: staffID, Name: name})
	return nil
}
