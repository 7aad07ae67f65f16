package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/acadrecords/internal/app/models"
)

// Shared repository error types. Services translate these into the
// application error taxonomy.
var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate record")
)

// StudentRepository handles database operations for students
type StudentRepository interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, student *models.Student) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	// DeleteWithEnrollments removes the student and every enrollment that
	// references it in one transaction, and reports the enrollment count.
	DeleteWithEnrollments(ctx context.Context, id int64) (int64, error)
}

// CourseRepository handles database operations for courses
type CourseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, course *models.Course) (int64, error)
	Update(ctx context.Context, course *models.Course) error
	// DeleteWithEnrollments removes the course and every enrollment that
	// references it in one transaction, and reports the enrollment count.
	DeleteWithEnrollments(ctx context.Context, id int64) (int64, error)
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository handles database operations for operator accounts
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *models.User) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    StudentRepository
	CourseRepository     CourseRepository
	EnrollmentRepository EnrollmentRepository
	UserRepository       UserRepository
}

// NewRepositories initializes all repositories over a connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		UserRepository:       NewUserRepository(db),
	}
}
