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

// EnrollmentService handles the enrollment lifecycle. Enrollments are the
// leaf of the entity graph: they reference exactly one student and one
// course and nothing references them.
type EnrollmentService struct {
	enrollmentRepo repositories.EnrollmentRepository
	studentRepo    repositories.StudentRepository
	courseRepo     repositories.CourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo repositories.EnrollmentRepository, studentRepo repositories.StudentRepository, courseRepo repositories.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// GetAllEnrollments retrieves all enrollments
func (s *EnrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving enrollments: %v", err))
	}
	return enrollments, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *EnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("enrollment not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving enrollment: %v", err))
	}
	return enrollment, nil
}

// CreateEnrollment enrolls a student in a course. The checks run in a fixed
// order: the course must exist, then the student must exist, and only then
// is the duplicate-pair check made, so a missing reference is never masked
// by a duplication error.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, courseID, studentID int64, details *models.Enrollment) (*models.Enrollment, error) {
	if details == nil {
		return nil, apperrors.NewInvalidArgumentError("enrollment details are required")
	}
	if !validation.IsValidTuition(details.Tuition) {
		return nil, apperrors.NewInvalidArgumentError("tuition cannot be negative")
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("course not found with id %d", courseID))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving course: %v", err))
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("student not found with id %d", studentID))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving student: %v", err))
	}

	enrolled, err := s.enrollmentRepo.ExistsByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error checking enrollment: %v", err))
	}
	if enrolled {
		return nil, apperrors.NewConflictError(fmt.Sprintf("student %d is already enrolled in course %d", studentID, courseID))
	}

	enrollment := &models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		ClassDate:  details.ClassDate,
		Tuition:    details.Tuition,
		Attendance: details.Attendance,
		Student:    student,
		Course:     course,
	}

	id, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error creating enrollment: %v", err))
	}
	enrollment.ID = id

	logger.Info().Int64("enrollmentID", id).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Enrollment created")
	return enrollment, nil
}

// UpdateEnrollment overwrites an existing enrollment. Both the student and
// course ids must be supplied and are re-resolved against the store. The
// duplicate-pair check does not run here: an update can retarget onto a
// pair that duplicates another enrollment and only the schema constraint
// stands in the way.
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, id int64, updated *models.Enrollment) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("enrollment not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving enrollment: %v", err))
	}

	if updated == nil {
		return nil, apperrors.NewInvalidArgumentError("enrollment data is required")
	}
	if updated.StudentID == 0 {
		return nil, apperrors.NewInvalidArgumentError("student cannot be empty")
	}
	if updated.CourseID == 0 {
		return nil, apperrors.NewInvalidArgumentError("course cannot be empty")
	}
	if !validation.IsValidTuition(updated.Tuition) {
		return nil, apperrors.NewInvalidArgumentError("tuition cannot be negative")
	}

	student, err := s.studentRepo.GetByID(ctx, updated.StudentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("student not found with id %d", updated.StudentID))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving student: %v", err))
	}

	course, err := s.courseRepo.GetByID(ctx, updated.CourseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("course not found with id %d", updated.CourseID))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving course: %v", err))
	}

	enrollment.StudentID = student.ID
	enrollment.CourseID = course.ID
	enrollment.ClassDate = updated.ClassDate
	enrollment.Tuition = updated.Tuition
	enrollment.Attendance = updated.Attendance
	enrollment.Student = student
	enrollment.Course = course

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("enrollment not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error updating enrollment: %v", err))
	}

	logger.Info().Int64("enrollmentID", id).Msg("Enrollment updated")
	return enrollment, nil
}

// DeleteEnrollment removes a single enrollment with no cascade
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("enrollment not found with id %d", id))
		}
		return apperrors.NewStorageError(fmt.Sprintf("error deleting enrollment: %v", err))
	}

	logger.Info().Int64("enrollmentID", id).Msg("Enrollment deleted")
	return nil
}
