package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/acadrecords/internal/app/models"
	"github.com/emre/acadrecords/internal/app/repositories"
	"github.com/emre/acadrecords/internal/pkg/apperrors"
	"github.com/emre/acadrecords/internal/pkg/filestorage"
	"github.com/emre/acadrecords/internal/pkg/logger"
	"github.com/emre/acadrecords/internal/pkg/validation"
)

// StudentService handles student lifecycle operations, including the
// enrollment cascade on delete and best-effort profile image cleanup.
type StudentService struct {
	studentRepo    repositories.StudentRepository
	enrollmentRepo repositories.EnrollmentRepository
	files          filestorage.FileStorage
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, enrollmentRepo repositories.EnrollmentRepository, files filestorage.FileStorage) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		files:          files,
	}
}

// validateStudent checks field-level rules before any store round trip
func validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewInvalidArgumentError("student data is required")
	}
	if validation.IsBlank(student.Name) {
		return apperrors.NewInvalidArgumentError("name cannot be blank")
	}
	if validation.IsBlank(student.Surname) {
		return apperrors.NewInvalidArgumentError("surname cannot be blank")
	}
	if validation.IsBlank(student.Email) {
		return apperrors.NewInvalidArgumentError("email cannot be blank")
	}
	if !validation.IsValidEmail(student.Email) {
		return apperrors.NewInvalidArgumentError("invalid email format: " + student.Email)
	}
	if validation.IsBlank(student.Department) {
		return apperrors.NewInvalidArgumentError("department cannot be blank")
	}
	return nil
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving students: %v", err))
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("student not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving student: %v", err))
	}
	return student, nil
}

// GetStudentByEmail retrieves a student by email address
func (s *StudentService) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("student not found with email " + email)
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving student by email: %v", err))
	}
	return student, nil
}

// CreateStudent persists a new student after checking email uniqueness.
// Two concurrent creates for the same email can both pass the check; the
// schema-level constraint catches the loser and it surfaces as a storage
// failure rather than a conflict.
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.ExistsByEmail(ctx, student.Email)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error checking student email: %v", err))
	}
	if exists {
		return nil, apperrors.NewConflictError("there is already a student with this email: " + student.Email)
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error creating student: %v", err))
	}
	student.ID = id

	logger.Info().Int64("studentID", id).Str("email", student.Email).Msg("Student created")
	return student, nil
}

// UpdateStudent overwrites all mutable fields of an existing student. The
// email uniqueness check only runs when the address actually changes. A
// replaced profile image is deleted from storage best-effort: a failed
// delete is logged and the update proceeds.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, data *models.Student) (*models.Student, error) {
	if err := validateStudent(data); err != nil {
		return nil, err
	}

	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("student not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving student: %v", err))
	}

	if data.Email != existing.Email {
		exists, err := s.studentRepo.ExistsByEmail(ctx, data.Email)
		if err != nil {
			return nil, apperrors.NewStorageError(fmt.Sprintf("error checking student email: %v", err))
		}
		if exists {
			return nil, apperrors.NewConflictError("there is already a student with this email: " + data.Email)
		}
	}

	if data.ProfileImage != "" && existing.ProfileImage != "" && data.ProfileImage != existing.ProfileImage {
		if err := s.files.DeleteFile(existing.ProfileImage); err != nil {
			logger.Error().Err(err).Int64("studentID", id).Str("image", existing.ProfileImage).Msg("Failed to delete old profile image")
		}
	}

	existing.Name = data.Name
	existing.Surname = data.Surname
	existing.Email = data.Email
	existing.Department = data.Department
	existing.ProfileImage = data.ProfileImage

	if err := s.studentRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("student not found with id %d", id))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error updating student: %v", err))
	}

	logger.Info().Int64("studentID", id).Msg("Student updated")
	return existing, nil
}

// DeleteStudent removes the student and cascades delete to every owned
// enrollment in one transaction. It returns the number of enrollments
// removed for caller reporting. A stored profile image is deleted
// best-effort before the row goes away.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) (int64, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, apperrors.NewNotFoundError(fmt.Sprintf("student not found with id %d", id))
		}
		return 0, apperrors.NewStorageError(fmt.Sprintf("error retrieving student: %v", err))
	}

	if existing.ProfileImage != "" {
		if err := s.files.DeleteFile(existing.ProfileImage); err != nil {
			logger.Error().Err(err).Int64("studentID", id).Str("image", existing.ProfileImage).Msg("Failed to delete profile image")
		}
	}

	deleted, err := s.studentRepo.DeleteWithEnrollments(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, apperrors.NewNotFoundError(fmt.Sprintf("student not found with id %d", id))
		}
		return 0, apperrors.NewStorageError(fmt.Sprintf("error deleting student: %v", err))
	}

	logger.Info().Int64("studentID", id).Int64("deletedEnrollments", deleted).Msg("Student deleted")
	return deleted, nil
}

// GetCoursesForStudent resolves the student's enrollments and projects them
// onto the parent courses
func (s *StudentService) GetCoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving enrollments: %v", err))
	}

	courses := []*models.Course{}
	for _, enrollment := range enrollments {
		if enrollment.Course != nil {
			courses = append(courses, enrollment.Course)
		}
	}
	return courses, nil
}
