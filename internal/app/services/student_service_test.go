package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emre/acadrecords/internal/app/models"
	"github.com/emre/acadrecords/internal/pkg/apperrors"
)

func newStudent(email string) *models.Student {
	return &models.Student{
		Name:       "Ada",
		Surname:    "Lovelace",
		Email:      email,
		Department: "Mathematics",
	}
}

func newCourse(name string) *models.Course {
	return &models.Course{
		Name:        name,
		Credit:      4,
		Description: "Introductory material",
		Semester:    "2026-FALL",
	}
}

func newEnrollmentDetails() *models.Enrollment {
	return &models.Enrollment{
		ClassDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Tuition:    1500,
		Attendance: false,
	}
}

func TestCreateStudentRoundTrip(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	created, err := f.studentService.CreateStudent(ctx, newStudent("ada@example.com"))
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected created student to get an ID")
	}

	got, err := f.studentService.GetStudentByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetStudentByID failed: %v", err)
	}
	if got.Email != "ada@example.com" || got.Name != "Ada" || got.Department != "Mathematics" {
		t.Errorf("round trip mismatch: got %+v", got)
	}

	byEmail, err := f.studentService.GetStudentByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetStudentByEmail failed: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("expected same student by email, got id %d want %d", byEmail.ID, created.ID)
	}
}

func TestCreateStudentValidation(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.Student)
	}{
		{"blank name", func(s *models.Student) { s.Name = "  " }},
		{"blank surname", func(s *models.Student) { s.Surname = "" }},
		{"blank email", func(s *models.Student) { s.Email = "" }},
		{"malformed email", func(s *models.Student) { s.Email = "not-an-email" }},
		{"blank department", func(s *models.Student) { s.Department = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			student := newStudent("valid@example.com")
			tc.mutate(student)
			_, err := f.studentService.CreateStudent(ctx, student)
			if !errors.Is(err, apperrors.ErrInvalidArgument) {
				t.Errorf("expected invalid argument error, got %v", err)
			}
		})
	}
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	if _, err := f.studentService.CreateStudent(ctx, newStudent("dup@example.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := f.studentService.CreateStudent(ctx, newStudent("dup@example.com"))
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error for duplicate email, got %v", err)
	}
}

func TestUpdateStudentSameEmailNoConflict(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	created, err := f.studentService.CreateStudent(ctx, newStudent("keep@example.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Keeping the same address must not trip the uniqueness check
	data := newStudent("keep@example.com")
	data.Department = "Physics"
	updated, err := f.studentService.UpdateStudent(ctx, created.ID, data)
	if err != nil {
		t.Fatalf("UpdateStudent failed: %v", err)
	}
	if updated.Department != "Physics" {
		t.Errorf("expected department updated, got %q", updated.Department)
	}
}

func TestUpdateStudentEmailConflict(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	if _, err := f.studentService.CreateStudent(ctx, newStudent("taken@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := f.studentService.CreateStudent(ctx, newStudent("second@example.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	data := newStudent("taken@example.com")
	_, err = f.studentService.UpdateStudent(ctx, second.ID, data)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict when changing to a taken email, got %v", err)
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	f := newFixtures()

	_, err := f.studentService.UpdateStudent(context.Background(), 999, newStudent("x@example.com"))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateStudentReplacesProfileImage(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	student := newStudent("pic@example.com")
	student.ProfileImage = "old.png"
	created, err := f.studentService.CreateStudent(ctx, student)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	data := newStudent("pic@example.com")
	data.ProfileImage = "new.png"
	updated, err := f.studentService.UpdateStudent(ctx, created.ID, data)
	if err != nil {
		t.Fatalf("UpdateStudent failed: %v", err)
	}
	if updated.ProfileImage != "new.png" {
		t.Errorf("expected new profile image, got %q", updated.ProfileImage)
	}
	if len(f.files.deleted) != 1 || f.files.deleted[0] != "old.png" {
		t.Errorf("expected old image deleted, got %v", f.files.deleted)
	}
}

func TestUpdateStudentImageDeleteFailureIsNotFatal(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	student := newStudent("pic2@example.com")
	student.ProfileImage = "old.png"
	created, err := f.studentService.CreateStudent(ctx, student)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	f.files.failDelete = true
	f.files.deleteErr = errors.New("disk unavailable")

	data := newStudent("pic2@example.com")
	data.ProfileImage = "new.png"
	updated, err := f.studentService.UpdateStudent(ctx, created.ID, data)
	if err != nil {
		t.Fatalf("expected update to succeed despite delete failure, got %v", err)
	}
	if updated.ProfileImage != "new.png" {
		t.Errorf("expected new profile image, got %q", updated.ProfileImage)
	}
}

func TestDeleteStudentCascadesEnrollments(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	victim, _ := f.studentService.CreateStudent(ctx, newStudent("victim@example.com"))
	bystander, _ := f.studentService.CreateStudent(ctx, newStudent("bystander@example.com"))
	math, _ := f.courseService.CreateCourse(ctx, newCourse("Mathematics 101"))
	physics, _ := f.courseService.CreateCourse(ctx, newCourse("Physics 101"))

	for _, courseID := range []int64{math.ID, physics.ID} {
		if _, err := f.enrollmentService.CreateEnrollment(ctx, courseID, victim.ID, newEnrollmentDetails()); err != nil {
			t.Fatalf("enroll victim failed: %v", err)
		}
	}
	if _, err := f.enrollmentService.CreateEnrollment(ctx, math.ID, bystander.ID, newEnrollmentDetails()); err != nil {
		t.Fatalf("enroll bystander failed: %v", err)
	}

	deleted, err := f.studentService.DeleteStudent(ctx, victim.ID)
	if err != nil {
		t.Fatalf("DeleteStudent failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 enrollments deleted, got %d", deleted)
	}

	// Unrelated rows survive the cascade
	remaining, err := f.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		t.Fatalf("GetAllEnrollments failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].StudentID != bystander.ID {
		t.Errorf("expected only the bystander enrollment to remain, got %+v", remaining)
	}
	if _, err := f.courseService.GetCourseByID(ctx, math.ID); err != nil {
		t.Errorf("expected course to survive student delete: %v", err)
	}

	// A second delete finds nothing
	if _, err := f.studentService.DeleteStudent(ctx, victim.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestGetCoursesForStudent(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	student, _ := f.studentService.CreateStudent(ctx, newStudent("list@example.com"))
	math, _ := f.courseService.CreateCourse(ctx, newCourse("Mathematics 101"))
	physics, _ := f.courseService.CreateCourse(ctx, newCourse("Physics 101"))

	if _, err := f.enrollmentService.CreateEnrollment(ctx, math.ID, student.ID, newEnrollmentDetails()); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if _, err := f.enrollmentService.CreateEnrollment(ctx, physics.ID, student.ID, newEnrollmentDetails()); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	courses, err := f.studentService.GetCoursesForStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("GetCoursesForStudent failed: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}

	// A student with no enrollments yields an empty list, not an error
	empty, err := f.studentService.GetCoursesForStudent(ctx, 12345)
	if err != nil {
		t.Fatalf("expected no error for unknown student, got %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty course list, got %d", len(empty))
	}
}
