package dto

type CreateTimetableInput struct {
	CourseID     string `json:"course_id" binding:"required,uuid"`
	LecturerID   string `json:"lecturer_id" binding:"required,uuid"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	DayOfWeek    string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Room         string `json:"room" binding:"required"`
	SessionType  string `json:"session_type" binding:"omitempty,oneof=Lecture Lab Tutorial Practical Exam"`
	Semester     int    `json:"semester" binding:"required,min=1,max=8"`
	AcademicYear string `json:"academic_year" binding:"required"`
	Notes        string `json:"notes"`
}

type UpdateTimetableInput struct {
	DayOfWeek   *string `json:"day_of_week" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Room        *string `json:"room"`
	SessionType *string `json:"session_type" binding:"omitempty,oneof=Lecture Lab Tutorial Practical Exam"`
	Semester    *int    `json:"semester" binding:"omitempty,min=1,max=8"`
	IsActive    *bool   `json:"is_active"`
	Notes       *string `json:"notes"`
}

type CreateConvocationInput struct {
	SerialNo         int     `json:"serial_no" binding:"required"`
	YearCompleted    int     `json:"year_completed" binding:"required"`
	Gender           string  `json:"gender" binding:"required,oneof=Male Female Other"`
	FullName         string  `json:"full_name" binding:"required"`
	NameWithInitials string  `json:"name_with_initials" binding:"required"`
	StudyMode        string  `json:"study_mode" binding:"omitempty,oneof='Full Time' 'Part Time'"`
	Address          string  `json:"address" binding:"required"`
	ContactNumber    string  `json:"contact_number" binding:"required"`
	PaymentStatus    string  `json:"payment_status" binding:"omitempty,oneof=Pending Paid Partial Waived"`
	ExamIndexNo      string  `json:"exam_index_no" binding:"required"`
	CourseCode       string  `json:"course_code" binding:"required"`
	ConvocationYear  int     `json:"convocation_year"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Remarks          *string `json:"remarks"`
}

type UpdateConvocationInput struct {
	StudyMode     *string `json:"study_mode" binding:"omitempty,oneof='Full Time' 'Part Time'"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,oneof=Pending Paid Partial Waived"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Remarks       *string `json:"remarks"`
}
