package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/acadrecords/internal/app/models"
	"github.com/emre/acadrecords/internal/app/repositories"
	"github.com/emre/acadrecords/internal/pkg/apperrors"
	"github.com/emre/acadrecords/internal/pkg/logger"
	"github.com/emre/acadrecords/internal/pkg/validation"
)

// CourseService handles course lifecycle operations
type CourseService struct {
	courseRepo     repositories.CourseRepository
	enrollmentRepo repositories.EnrollmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository, enrollmentRepo repositories.EnrollmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// validateCourse checks field-level rules before any store round trip
func validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewInvalidArgumentError("course data is required")
	}
	if validation.IsBlank(course.Name) {
		return apperrors.NewInvalidArgumentError("name cannot be blank")
	}
	if !validation.IsValidCredit(course.Credit) {
		return apperrors.NewInvalidArgumentError("credit must be at least 1")
	}
	if validation.IsBlank(course.Description) {
		return apperrors.NewInvalidArgumentError("description cannot be blank")
	}
	if validation.IsBlank(course.Semester) {
		return apperrors.NewInvalidArgumentError("semester cannot be blank")
	}
	return nil
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving courses: %v", err))
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("course not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving course: %v", err))
	}
	return course, nil
}

// CreateCourse persists a new course after checking name uniqueness
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.ExistsByName(ctx, course.Name)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error checking course name: %v", err))
	}
	if exists {
		return nil, apperrors.NewConflictError("there is already a course with this name: " + course.Name)
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error creating course: %v", err))
	}
	course.ID = id

	logger.Info().Int64("courseID", id).Str("name", course.Name).Msg("Course created")
	return course, nil
}

// UpdateCourse overwrites name, credit, description and semester of an
// existing course. Unlike CreateCourse, the name uniqueness check does not
// run here; a rename onto a taken name is only caught by the schema
// constraint and surfaces as a storage failure.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, data *models.Course) (*models.Course, error) {
	if err := validateCourse(data); err != nil {
		return nil, err
	}

	existing, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("course not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving course: %v", err))
	}

	existing.Name = data.Name
	existing.Credit = data.Credit
	existing.Description = data.Description
	existing.Semester = data.Semester

	if err := s.courseRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("course not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error updating course: %v", err))
	}

	logger.Info().Int64("courseID", id).Msg("Course updated")
	return existing, nil
}

// DeleteCourse removes the course and cascades delete to every owned
// enrollment in one transaction, returning the enrollment count
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.courseRepo.DeleteWithEnrollments(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, apperrors.NewNotFoundError(fmt.Sprintf("course not found with id %d", id))
		}
		return 0, apperrors.NewStorageError(fmt.Sprintf("error deleting course: %v", err))
	}

	logger.Info().Int64("courseID", id).Int64("deletedEnrollments", deleted).Msg("Course deleted")
	return deleted, nil
}

// GetStudentsInCourse resolves the course's enrollments and projects them
// onto the student side, skipping any enrollment whose student reference
// could not be resolved
func (s *CourseService) GetStudentsInCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	enrollments, err := s.enrollmentRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving enrollments: %v", err))
	}

	students := []*models.Student{}
	for _, enrollment := range enrollments {
		if enrollment.Student != nil {
			students = append(students, enrollment.Student)
		}
	}
	return students, nil
}
