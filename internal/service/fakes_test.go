package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nexora.lk/campuscore/internal/model"
)

// In-memory stand-ins for the gorm repositories. They honor the same
// contract the services rely on: lookups miss with gorm.ErrRecordNotFound
// and paired writes land together.
type fakeStore struct {
	accounts     map[uuid.UUID]*model.Account
	students     map[uuid.UUID]*model.Student
	lecturers    map[uuid.UUID]*model.Lecturer
	hods         map[uuid.UUID]*model.HOD
	staff        map[uuid.UUID]*model.Staff
	departments  map[uuid.UUID]*model.Department
	courses      map[uuid.UUID]*model.Course
	results      map[uuid.UUID]*model.ExamResult
	timetables   map[uuid.UUID]*model.Timetable
	convocations map[uuid.UUID]*model.Convocation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:     map[uuid.UUID]*model.Account{},
		students:     map[uuid.UUID]*model.Student{},
		lecturers:    map[uuid.UUID]*model.Lecturer{},
		hods:         map[uuid.UUID]*model.HOD{},
		staff:        map[uuid.UUID]*model.Staff{},
		departments:  map[uuid.UUID]*model.Department{},
		courses:      map[uuid.UUID]*model.Course{},
		results:      map[uuid.UUID]*model.ExamResult{},
		timetables:   map[uuid.UUID]*model.Timetable{},
		convocations: map[uuid.UUID]*model.Convocation{},
	}
}

func (s *fakeStore) addDepartment(name, code string) *model.Department {
	department := &model.Department{ID: uuid.New(), Name: name, Code: code, IsActive: true}
	s.departments[department.ID] = department
	return department
}

func (s *fakeStore) addCourse(code, name string, departmentID uuid.UUID) *model.Course {
	course := &model.Course{ID: uuid.New(), CourseCode: code, CourseName: name, DepartmentID: departmentID, IsActive: true}
	s.courses[course.ID] = course
	return course
}

type fakeAccountRepo struct{ store *fakeStore }

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*model.Account, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if account, ok := r.store.accounts[parsed]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*model.Account, error) {
	for _, account := range r.store.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*model.Account, error) {
	for _, account := range r.store.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) Save(_ context.Context, account *model.Account) error {
	copied := *account
	r.store.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *model.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	copied := *account
	r.store.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.accounts)), nil
}

type fakeStudentRepo struct{ store *fakeStore }

func (r *fakeStudentRepo) attach(student model.Student) *model.Student {
	if account, ok := r.store.accounts[student.AccountID]; ok {
		student.Account = *account
	}
	return &student
}

func (r *fakeStudentRepo) Create(ctx context.Context, account *model.Account, student *model.Student) error {
	if err := (&fakeAccountRepo{r.store}).Create(ctx, account); err != nil {
		return err
	}
	student.AccountID = account.ID
	return r.CreateProfile(ctx, student)
}

func (r *fakeStudentRepo) CreateProfile(_ context.Context, student *model.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	copied := *student
	r.store.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id string) (*model.Student, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if student, ok := r.store.students[parsed]; ok {
		return r.attach(*student), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindByStudentID(_ context.Context, studentID string) (*model.Student, error) {
	for _, student := range r.store.students {
		if student.StudentID == studentID {
			return r.attach(*student), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindByRegistrationNumber(_ context.Context, regNumber string) (*model.Student, error) {
	for _, student := range r.store.students {
		if student.RegistrationNumber == regNumber {
			return r.attach(*student), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindAll(_ context.Context) ([]*model.Student, error) {
	students := make([]*model.Student, 0, len(r.store.students))
	for _, student := range r.store.students {
		students = append(students, r.attach(*student))
	}
	return students, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *model.Student, account *model.Account) error {
	copied := *student
	r.store.students[student.ID] = &copied
	if account != nil {
		accountCopy := *account
		r.store.accounts[account.ID] = &accountCopy
	}
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	student, ok := r.store.students[parsed]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.students, parsed)
	delete(r.store.accounts, student.AccountID)
	return nil
}

func (r *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.students)), nil
}

type fakeLecturerRepo struct{ store *fakeStore }

func (r *fakeLecturerRepo) attach(lecturer model.Lecturer) *model.Lecturer {
	if account, ok := r.store.accounts[lecturer.AccountID]; ok {
		lecturer.Account = *account
	}
	return &lecturer
}

func (r *fakeLecturerRepo) Create(ctx context.Context, account *model.Account, lecturer *model.Lecturer) error {
	if err := (&fakeAccountRepo{r.store}).Create(ctx, account); err != nil {
		return err
	}
	lecturer.AccountID = account.ID
	return r.CreateProfile(ctx, lecturer)
}

func (r *fakeLecturerRepo) CreateProfile(_ context.Context, lecturer *model.Lecturer) error {
	if lecturer.ID == uuid.Nil {
		lecturer.ID = uuid.New()
	}
	copied := *lecturer
	r.store.lecturers[lecturer.ID] = &copied
	return nil
}

func (r *fakeLecturerRepo) FindByID(_ context.Context, id string) (*model.Lecturer, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if lecturer, ok := r.store.lecturers[parsed]; ok {
		return r.attach(*lecturer), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLecturerRepo) FindByLecturerID(_ context.Context, lecturerID string) (*model.Lecturer, error) {
	for _, lecturer := range r.store.lecturers {
		if lecturer.LecturerID == lecturerID {
			return r.attach(*lecturer), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLecturerRepo) FindAll(_ context.Context) ([]*model.Lecturer, error) {
	lecturers := make([]*model.Lecturer, 0, len(r.store.lecturers))
	for _, lecturer := range r.store.lecturers {
		lecturers = append(lecturers, r.attach(*lecturer))
	}
	return lecturers, nil
}

func (r *fakeLecturerRepo) Update(_ context.Context, lecturer *model.Lecturer, account *model.Account) error {
	copied := *lecturer
	r.store.lecturers[lecturer.ID] = &copied
	if account != nil {
		accountCopy := *account
		r.store.accounts[account.ID] = &accountCopy
	}
	return nil
}

func (r *fakeLecturerRepo) ReplaceCourses(_ context.Context, lecturer *model.Lecturer, courses []model.Course) error {
	stored, ok := r.store.lecturers[lecturer.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.CoursesTaught = courses
	return nil
}

func (r *fakeLecturerRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	lecturer, ok := r.store.lecturers[parsed]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.lecturers, parsed)
	delete(r.store.accounts, lecturer.AccountID)
	return nil
}

func (r *fakeLecturerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.lecturers)), nil
}

type fakeHODRepo struct{ store *fakeStore }

func (r *fakeHODRepo) attach(hod model.HOD) *model.HOD {
	if account, ok := r.store.accounts[hod.AccountID]; ok {
		hod.Account = *account
	}
	return &hod
}

func (r *fakeHODRepo) Create(ctx context.Context, account *model.Account, hod *model.HOD) error {
	if err := (&fakeAccountRepo{r.store}).Create(ctx, account); err != nil {
		return err
	}
	hod.AccountID = account.ID
	return r.CreateProfile(ctx, hod)
}

func (r *fakeHODRepo) CreateProfile(_ context.Context, hod *model.HOD) error {
	if hod.ID == uuid.Nil {
		hod.ID = uuid.New()
	}
	copied := *hod
	r.store.hods[hod.ID] = &copied
	if department, ok := r.store.departments[hod.DepartmentID]; ok {
		department.HODID = &hod.ID
	}
	return nil
}

func (r *fakeHODRepo) FindByID(_ context.Context, id string) (*model.HOD, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if hod, ok := r.store.hods[parsed]; ok {
		return r.attach(*hod), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeHODRepo) FindByHODID(_ context.Context, hodID string) (*model.HOD, error) {
	for _, hod := range r.store.hods {
		if hod.HODID == hodID {
			return r.attach(*hod), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeHODRepo) FindByDepartmentID(_ context.Context, departmentID string) (*model.HOD, error) {
	for _, hod := range r.store.hods {
		if hod.DepartmentID.String() == departmentID {
			return r.attach(*hod), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeHODRepo) FindAll(_ context.Context) ([]*model.HOD, error) {
	hods := make([]*model.HOD, 0, len(r.store.hods))
	for _, hod := range r.store.hods {
		hods = append(hods, r.attach(*hod))
	}
	return hods, nil
}

func (r *fakeHODRepo) Update(_ context.Context, hod *model.HOD, account *model.Account) error {
	copied := *hod
	r.store.hods[hod.ID] = &copied
	if account != nil {
		accountCopy := *account
		r.store.accounts[account.ID] = &accountCopy
	}
	return nil
}

func (r *fakeHODRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	hod, ok := r.store.hods[parsed]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if department, ok := r.store.departments[hod.DepartmentID]; ok {
		department.HODID = nil
	}
	delete(r.store.hods, parsed)
	delete(r.store.accounts, hod.AccountID)
	return nil
}

func (r *fakeHODRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.hods)), nil
}

type fakeStaffRepo struct{ store *fakeStore }

func (r *fakeStaffRepo) attach(member model.Staff) *model.Staff {
	if account, ok := r.store.accounts[member.AccountID]; ok {
		member.Account = *account
	}
	return &member
}

func (r *fakeStaffRepo) Create(ctx context.Context, account *model.Account, member *model.Staff) error {
	if err := (&fakeAccountRepo{r.store}).Create(ctx, account); err != nil {
		return err
	}
	member.AccountID = account.ID
	return r.CreateProfile(ctx, member)
}

func (r *fakeStaffRepo) CreateProfile(_ context.Context, member *model.Staff) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	copied := *member
	r.store.staff[member.ID] = &copied
	return nil
}

func (r *fakeStaffRepo) FindByID(_ context.Context, id string) (*model.Staff, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if member, ok := r.store.staff[parsed]; ok {
		return r.attach(*member), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStaffRepo) FindByStaffID(_ context.Context, staffID string) (*model.Staff, error) {
	for _, member := range r.store.staff {
		if member.StaffID == staffID {
			return r.attach(*member), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStaffRepo) FindAll(_ context.Context) ([]*model.Staff, error) {
	members := make([]*model.Staff, 0, len(r.store.staff))
	for _, member := range r.store.staff {
		members = append(members, r.attach(*member))
	}
	return members, nil
}

func (r *fakeStaffRepo) Update(_ context.Context, member *model.Staff, account *model.Account) error {
	copied := *member
	r.store.staff[member.ID] = &copied
	if account != nil {
		accountCopy := *account
		r.store.accounts[account.ID] = &accountCopy
	}
	return nil
}

func (r *fakeStaffRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	member, ok := r.store.staff[parsed]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.staff, parsed)
	delete(r.store.accounts, member.AccountID)
	return nil
}

func (r *fakeStaffRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.staff)), nil
}

type fakeDepartmentRepo struct{ store *fakeStore }

func (r *fakeDepartmentRepo) Create(_ context.Context, department *model.Department) error {
	if department.ID == uuid.Nil {
		department.ID = uuid.New()
	}
	copied := *department
	r.store.departments[department.ID] = &copied
	return nil
}

func (r *fakeDepartmentRepo) FindByID(_ context.Context, id string) (*model.Department, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if department, ok := r.store.departments[parsed]; ok {
		copied := *department
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDepartmentRepo) FindByName(_ context.Context, name string) (*model.Department, error) {
	for _, department := range r.store.departments {
		if department.Name == name {
			copied := *department
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDepartmentRepo) FindByCode(_ context.Context, code string) (*model.Department, error) {
	for _, department := range r.store.departments {
		if department.Code == code {
			copied := *department
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDepartmentRepo) FindAll(_ context.Context) ([]*model.Department, error) {
	departments := make([]*model.Department, 0, len(r.store.departments))
	for _, department := range r.store.departments {
		copied := *department
		departments = append(departments, &copied)
	}
	return departments, nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, department *model.Department) error {
	copied := *department
	r.store.departments[department.ID] = &copied
	return nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.departments, parsed)
	return nil
}

type fakeCourseRepo struct{ store *fakeStore }

func (r *fakeCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	copied := *course
	r.store.courses[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id string) (*model.Course, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if course, ok := r.store.courses[parsed]; ok {
		copied := *course
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCourseRepo) FindByCode(_ context.Context, code string) (*model.Course, error) {
	for _, course := range r.store.courses {
		if course.CourseCode == code {
			copied := *course
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCourseRepo) FindAll(_ context.Context) ([]*model.Course, error) {
	courses := make([]*model.Course, 0, len(r.store.courses))
	for _, course := range r.store.courses {
		copied := *course
		courses = append(courses, &copied)
	}
	return courses, nil
}

func (r *fakeCourseRepo) FindByDepartment(_ context.Context, departmentID string) ([]*model.Course, error) {
	var courses []*model.Course
	for _, course := range r.store.courses {
		if course.DepartmentID.String() == departmentID {
			copied := *course
			courses = append(courses, &copied)
		}
	}
	return courses, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *model.Course) error {
	copied := *course
	r.store.courses[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) ReplacePrerequisites(_ context.Context, course *model.Course, prerequisites []model.Course) error {
	stored, ok := r.store.courses[course.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Prerequisites = prerequisites
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.courses, parsed)
	return nil
}

type fakeExamResultRepo struct{ store *fakeStore }

func (r *fakeExamResultRepo) Create(_ context.Context, result *model.ExamResult) error {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	copied := *result
	r.store.results[result.ID] = &copied
	return nil
}

func (r *fakeExamResultRepo) FindByID(_ context.Context, id string) (*model.ExamResult, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if result, ok := r.store.results[parsed]; ok {
		copied := *result
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeExamResultRepo) FindByKey(_ context.Context, studentID, courseID uuid.UUID, academicYear string, semester int) (*model.ExamResult, error) {
	for _, result := range r.store.results {
		if result.StudentID == studentID && result.CourseID == courseID &&
			result.AcademicYear == academicYear && result.Semester == semester {
			copied := *result
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeExamResultRepo) FindByStudent(_ context.Context, studentID string) ([]*model.ExamResult, error) {
	var results []*model.ExamResult
	for _, result := range r.store.results {
		if result.StudentID.String() == studentID {
			copied := *result
			results = append(results, &copied)
		}
	}
	return results, nil
}

func (r *fakeExamResultRepo) FindAll(_ context.Context) ([]*model.ExamResult, error) {
	results := make([]*model.ExamResult, 0, len(r.store.results))
	for _, result := range r.store.results {
		copied := *result
		results = append(results, &copied)
	}
	return results, nil
}

func (r *fakeExamResultRepo) Update(_ context.Context, result *model.ExamResult) error {
	copied := *result
	r.store.results[result.ID] = &copied
	return nil
}

func (r *fakeExamResultRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.results, parsed)
	return nil
}

type fakeTimetableRepo struct{ store *fakeStore }

func (r *fakeTimetableRepo) Create(_ context.Context, entry *model.Timetable) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	copied := *entry
	r.store.timetables[entry.ID] = &copied
	return nil
}

func (r *fakeTimetableRepo) FindByID(_ context.Context, id string) (*model.Timetable, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if entry, ok := r.store.timetables[parsed]; ok {
		copied := *entry
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTimetableRepo) FindAll(_ context.Context) ([]*model.Timetable, error) {
	entries := make([]*model.Timetable, 0, len(r.store.timetables))
	for _, entry := range r.store.timetables {
		copied := *entry
		entries = append(entries, &copied)
	}
	return entries, nil
}

func (r *fakeTimetableRepo) FindByDepartment(_ context.Context, departmentID string) ([]*model.Timetable, error) {
	var entries []*model.Timetable
	for _, entry := range r.store.timetables {
		if entry.DepartmentID.String() == departmentID {
			copied := *entry
			entries = append(entries, &copied)
		}
	}
	return entries, nil
}

func (r *fakeTimetableRepo) Update(_ context.Context, entry *model.Timetable) error {
	copied := *entry
	r.store.timetables[entry.ID] = &copied
	return nil
}

func (r *fakeTimetableRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.timetables, parsed)
	return nil
}

type fakeConvocationRepo struct{ store *fakeStore }

func (r *fakeConvocationRepo) Create(_ context.Context, record *model.Convocation) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	copied := *record
	r.store.convocations[record.ID] = &copied
	return nil
}

func (r *fakeConvocationRepo) FindByID(_ context.Context, id string) (*model.Convocation, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if record, ok := r.store.convocations[parsed]; ok {
		copied := *record
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeConvocationRepo) FindByExamIndexNo(_ context.Context, examIndexNo string) (*model.Convocation, error) {
	for _, record := range r.store.convocations {
		if record.ExamIndexNo == examIndexNo {
			copied := *record
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeConvocationRepo) FindAll(_ context.Context) ([]*model.Convocation, error) {
	records := make([]*model.Convocation, 0, len(r.store.convocations))
	for _, record := range r.store.convocations {
		copied := *record
		records = append(records, &copied)
	}
	return records, nil
}

func (r *fakeConvocationRepo) Update(_ context.Context, record *model.Convocation) error {
	copied := *record
	r.store.convocations[record.ID] = &copied
	return nil
}

func (r *fakeConvocationRepo) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.convocations, parsed)
	return nil
}
