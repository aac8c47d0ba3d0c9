package dto

import "time"

// AccountFields is the account half of every profile creation payload.
type AccountFields struct {
	Username  string  `json:"username" binding:"required,min=3,max=50"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	NIC       *string `json:"nic"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// AccountPatch is the account half of a profile update. All fields are
// optional; an all-nil patch leaves the account untouched.
type AccountPatch struct {
	Username  *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	NIC       *string `json:"nic"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	IsActive  *bool   `json:"is_active"`
}

func (p AccountPatch) Empty() bool {
	return p.Username == nil && p.Email == nil && p.FirstName == nil &&
		p.LastName == nil && p.NIC == nil && p.Phone == nil &&
		p.Address == nil && p.IsActive == nil
}

type CreateStudentInput struct {
	AccountFields

	StudentID          string     `json:"student_id" binding:"required"`
	RegistrationNumber string     `json:"registration_number" binding:"required"`
	CourseID           *string    `json:"course_id" binding:"omitempty,uuid"`
	DepartmentID       *string    `json:"department_id" binding:"omitempty,uuid"`
	Batch              string     `json:"batch" binding:"required"`
	YearOfStudy        int        `json:"year_of_study" binding:"required,min=1,max=4"`
	Semester           int        `json:"semester" binding:"required,min=1,max=8"`
	EnrollmentDate     *time.Time `json:"enrollment_date"`
	GuardianName       *string    `json:"guardian_name"`
	GuardianPhone      *string    `json:"guardian_phone"`
}

type UpdateStudentInput struct {
	AccountPatch

	CourseID       *string  `json:"course_id" binding:"omitempty,uuid"`
	DepartmentID   *string  `json:"department_id" binding:"omitempty,uuid"`
	Batch          *string  `json:"batch"`
	YearOfStudy    *int     `json:"year_of_study" binding:"omitempty,min=1,max=4"`
	Semester       *int     `json:"semester" binding:"omitempty,min=1,max=8"`
	AcademicStatus *string  `json:"academic_status" binding:"omitempty,oneof=active suspended graduated withdrawn"`
	GPA            *float64 `json:"gpa" binding:"omitempty,min=0,max=4"`
	Attendance     *float64 `json:"attendance" binding:"omitempty,min=0,max=100"`
	GuardianName   *string  `json:"guardian_name"`
	GuardianPhone  *string  `json:"guardian_phone"`
}

type CreateLecturerInput struct {
	AccountFields

	LecturerID        string     `json:"lecturer_id" binding:"required"`
	DepartmentID      *string    `json:"department_id" binding:"omitempty,uuid"`
	Designation       string     `json:"designation" binding:"omitempty,oneof=Lecturer 'Senior Lecturer' 'Assistant Lecturer' Professor 'Associate Professor'"`
	Qualification     string     `json:"qualification" binding:"required"`
	Specialization    string     `json:"specialization"`
	YearsOfExperience int        `json:"years_of_experience" binding:"omitempty,min=0"`
	JoinDate          *time.Time `json:"join_date"`
	OfficeRoom        *string    `json:"office_room"`
	EmploymentType    string     `json:"employment_type" binding:"omitempty,oneof=Full-time Part-time Visiting"`
	CourseIDs         []string   `json:"course_ids" binding:"omitempty,dive,uuid"`
}

type UpdateLecturerInput struct {
	AccountPatch

	DepartmentID      *string    `json:"department_id" binding:"omitempty,uuid"`
	Designation       *string    `json:"designation"`
	Qualification     *string    `json:"qualification"`
	Specialization    *string    `json:"specialization"`
	YearsOfExperience *int       `json:"years_of_experience" binding:"omitempty,min=0"`
	JoinDate          *time.Time `json:"join_date"`
	OfficeRoom        *string    `json:"office_room"`
	EmploymentType    *string    `json:"employment_type" binding:"omitempty,oneof=Full-time Part-time Visiting"`
	CourseIDs         []string   `json:"course_ids" binding:"omitempty,dive,uuid"`
}

type CreateHODInput struct {
	AccountFields

	HODID           string     `json:"hod_id" binding:"required"`
	DepartmentID    string     `json:"department_id" binding:"required,uuid"`
	Qualification   string     `json:"qualification" binding:"required"`
	Specialization  string     `json:"specialization"`
	AppointmentDate *time.Time `json:"appointment_date"`
	OfficeRoom      *string    `json:"office_room"`
}

type UpdateHODInput struct {
	AccountPatch

	Qualification   *string    `json:"qualification"`
	Specialization  *string    `json:"specialization"`
	AppointmentDate *time.Time `json:"appointment_date"`
	OfficeRoom      *string    `json:"office_room"`
}

type CreateStaffInput struct {
	AccountFields

	StaffID        string     `json:"staff_id" binding:"required"`
	DepartmentID   *string    `json:"department_id" binding:"omitempty,uuid"`
	Position       string     `json:"position" binding:"required"`
	StaffType      string     `json:"staff_type" binding:"omitempty,oneof=Administrative Technical Support Maintenance Library IT"`
	JoinDate       *time.Time `json:"join_date"`
	OfficeRoom     *string    `json:"office_room"`
	EmploymentType string     `json:"employment_type" binding:"omitempty,oneof=Full-time Part-time Contract"`
}

type UpdateStaffInput struct {
	AccountPatch

	DepartmentID   *string    `json:"department_id" binding:"omitempty,uuid"`
	Position       *string    `json:"position"`
	StaffType      *string    `json:"staff_type" binding:"omitempty,oneof=Administrative Technical Support Maintenance Library IT"`
	JoinDate       *time.Time `json:"join_date"`
	OfficeRoom     *string    `json:"office_room"`
	EmploymentType *string    `json:"employment_type" binding:"omitempty,oneof=Full-time Part-time Contract"`
}
