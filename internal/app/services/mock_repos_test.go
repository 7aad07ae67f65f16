package services

import (
	"context"
	"mime/multipart"
	"path/filepath"

	"github.com/emre/acadrecords/internal/app/models"
	"github.com/emre/acadrecords/internal/app/repositories"
)

// memStore is a shared in-memory backing store for the repository mocks.
// The unique constraints of the real schema are enforced on write so that
// constraint-violation paths can be exercised without a database.
type memStore struct {
	students    map[int64]*models.Student
	courses     map[int64]*models.Course
	enrollments map[int64]*models.Enrollment
	users       map[int64]*models.User

	nextStudentID    int64
	nextCourseID     int64
	nextEnrollmentID int64
	nextUserID       int64
}

func newMemStore() *memStore {
	return &memStore{
		students:    make(map[int64]*models.Student),
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[int64]*models.Enrollment),
		users:       make(map[int64]*models.User),
	}
}

type mockStudentRepo struct {
	store *memStore
}

func (r *mockStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	students := []*models.Student{}
	for _, s := range r.store.students {
		copied := *s
		students = append(students, &copied)
	}
	return students, nil
}

func (r *mockStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := r.store.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *mockStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, s := range r.store.students {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *mockStudentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, s := range r.store.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockStudentRepo) Create(ctx context.Context, student *models.Student) (int64, error) {
	for _, s := range r.store.students {
		if s.Email == student.Email {
			return 0, repositories.ErrDuplicateKey
		}
	}
	r.store.nextStudentID++
	copied := *student
	copied.ID = r.store.nextStudentID
	r.store.students[copied.ID] = &copied
	return copied.ID, nil
}

func (r *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if _, ok := r.store.students[student.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, s := range r.store.students {
		if s.ID != student.ID && s.Email == student.Email {
			return repositories.ErrDuplicateKey
		}
	}
	copied := *student
	r.store.students[student.ID] = &copied
	return nil
}

func (r *mockStudentRepo) DeleteWithEnrollments(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.store.students[id]; !ok {
		return 0, repositories.ErrNotFound
	}
	var deleted int64
	for eid, e := range r.store.enrollments {
		if e.StudentID == id {
			delete(r.store.enrollments, eid)
			deleted++
		}
	}
	delete(r.store.students, id)
	return deleted, nil
}

type mockCourseRepo struct {
	store *memStore
}

func (r *mockCourseRepo) GetAll(ctx context.Context) ([]*models.Course, error) {
	courses := []*models.Course{}
	for _, c := range r.store.courses {
		copied := *c
		courses = append(courses, &copied)
	}
	return courses, nil
}

func (r *mockCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	c, ok := r.store.courses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *mockCourseRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, c := range r.store.courses {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockCourseRepo) Create(ctx context.Context, course *models.Course) (int64, error) {
	for _, c := range r.store.courses {
		if c.Name == course.Name {
			return 0, repositories.ErrDuplicateKey
		}
	}
	r.store.nextCourseID++
	copied := *course
	copied.ID = r.store.nextCourseID
	r.store.courses[copied.ID] = &copied
	return copied.ID, nil
}

func (r *mockCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if _, ok := r.store.courses[course.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, c := range r.store.courses {
		if c.ID != course.ID && c.Name == course.Name {
			return repositories.ErrDuplicateKey
		}
	}
	copied := *course
	r.store.courses[course.ID] = &copied
	return nil
}

func (r *mockCourseRepo) DeleteWithEnrollments(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.store.courses[id]; !ok {
		return 0, repositories.ErrNotFound
	}
	var deleted int64
	for eid, e := range r.store.enrollments {
		if e.CourseID == id {
			delete(r.store.enrollments, eid)
			deleted++
		}
	}
	delete(r.store.courses, id)
	return deleted, nil
}

type mockEnrollmentRepo struct {
	store *memStore
}

// hydrate attaches the current student and course rows the way the SQL
// joins do, leaving the student nil when it cannot be resolved.
func (r *mockEnrollmentRepo) hydrate(e *models.Enrollment) *models.Enrollment {
	copied := *e
	if s, ok := r.store.students[e.StudentID]; ok {
		sc := *s
		copied.Student = &sc
	} else {
		copied.Student = nil
	}
	if c, ok := r.store.courses[e.CourseID]; ok {
		cc := *c
		copied.Course = &cc
	} else {
		copied.Course = nil
	}
	return &copied
}

func (r *mockEnrollmentRepo) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments := []*models.Enrollment{}
	for _, e := range r.store.enrollments {
		enrollments = append(enrollments, r.hydrate(e))
	}
	return enrollments, nil
}

func (r *mockEnrollmentRepo) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	e, ok := r.store.enrollments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.hydrate(e), nil
}

func (r *mockEnrollmentRepo) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	enrollments := []*models.Enrollment{}
	for _, e := range r.store.enrollments {
		if e.StudentID == studentID {
			enrollments = append(enrollments, r.hydrate(e))
		}
	}
	return enrollments, nil
}

func (r *mockEnrollmentRepo) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	enrollments := []*models.Enrollment{}
	for _, e := range r.store.enrollments {
		if e.CourseID == courseID {
			enrollments = append(enrollments, r.hydrate(e))
		}
	}
	return enrollments, nil
}

func (r *mockEnrollmentRepo) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error) {
	for _, e := range r.store.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	for _, e := range r.store.enrollments {
		if e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID {
			return 0, repositories.ErrDuplicateKey
		}
	}
	r.store.nextEnrollmentID++
	copied := *enrollment
	copied.ID = r.store.nextEnrollmentID
	copied.Student = nil
	copied.Course = nil
	r.store.enrollments[copied.ID] = &copied
	return copied.ID, nil
}

func (r *mockEnrollmentRepo) Update(ctx context.Context, enrollment *models.Enrollment) error {
	if _, ok := r.store.enrollments[enrollment.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, e := range r.store.enrollments {
		if e.ID != enrollment.ID && e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID {
			return repositories.ErrDuplicateKey
		}
	}
	copied := *enrollment
	copied.Student = nil
	copied.Course = nil
	r.store.enrollments[enrollment.ID] = &copied
	return nil
}

func (r *mockEnrollmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.store.enrollments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.store.enrollments, id)
	return nil
}

type mockUserRepo struct {
	store *memStore
}

func (r *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.store.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range r.store.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	r.store.nextUserID++
	copied := *user
	copied.ID = r.store.nextUserID
	r.store.users[copied.ID] = &copied
	return copied.ID, nil
}

// mockFileStorage records deletions and optionally fails them.
type mockFileStorage struct {
	saved      []string
	deleted    []string
	failDelete bool
	deleteErr  error
}

func (m *mockFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	key := "stored-" + fileHeader.Filename
	m.saved = append(m.saved, key)
	return key, nil
}

func (m *mockFileStorage) DeleteFile(key string) error {
	if m.failDelete {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockFileStorage) GetFullPath(key string) string {
	return filepath.Join("uploads", key)
}

// fixtures wires the three domain services over one shared store.
type fixtures struct {
	store             *memStore
	files             *mockFileStorage
	studentService    *StudentService
	courseService     *CourseService
	enrollmentService *EnrollmentService
}

func newFixtures() *fixtures {
	store := newMemStore()
	studentRepo := &mockStudentRepo{store: store}
	courseRepo := &mockCourseRepo{store: store}
	enrollmentRepo := &mockEnrollmentRepo{store: store}
	files := &mockFileStorage{}

	return &fixtures{
		store:             store,
		files:             files,
		studentService:    NewStudentService(studentRepo, enrollmentRepo, files),
		courseService:     NewCourseService(courseRepo, enrollmentRepo),
		enrollmentService: NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo),
	}
}
