package services

import (
	"context"
	"errors"
	"testing"

	"github.com/emre/acadrecords/internal/app/models"
	"github.com/emre/acadrecords/internal/pkg/apperrors"
)

func TestCreateCourseRoundTrip(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	created, err := f.courseService.CreateCourse(ctx, newCourse("Algorithms"))
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected created course to get an ID")
	}

	got, err := f.courseService.GetCourseByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCourseByID failed: %v", err)
	}
	if got.Name != "Algorithms" || got.Credit != 4 {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestCreateCourseValidation(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.Course)
	}{
		{"blank name", func(c *models.Course) { c.Name = " " }},
		{"zero credit", func(c *models.Course) { c.Credit = 0 }},
		{"negative credit", func(c *models.Course) { c.Credit = -3 }},
		{"blank description", func(c *models.Course) { c.Description = "" }},
		{"blank semester", func(c *models.Course) { c.Semester = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			course := newCourse("Valid Course")
			tc.mutate(course)
			_, err := f.courseService.CreateCourse(ctx, course)
			if !errors.Is(err, apperrors.ErrInvalidArgument) {
				t.Errorf("expected invalid argument error, got %v", err)
			}
		})
	}
}

func TestCreateCourseDuplicateName(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	if _, err := f.courseService.CreateCourse(ctx, newCourse("Databases")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := f.courseService.CreateCourse(ctx, newCourse("Databases"))
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error for duplicate name, got %v", err)
	}
}

func TestUpdateCourse(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	created, err := f.courseService.CreateCourse(ctx, newCourse("Networks"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	data := newCourse("Advanced Networks")
	data.Credit = 6
	updated, err := f.courseService.UpdateCourse(ctx, created.ID, data)
	if err != nil {
		t.Fatalf("UpdateCourse failed: %v", err)
	}
	if updated.Name != "Advanced Networks" || updated.Credit != 6 {
		t.Errorf("update mismatch: got %+v", updated)
	}

	_, err = f.courseService.UpdateCourse(ctx, 999, newCourse("Ghost"))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not found for missing course, got %v", err)
	}
}

func TestUpdateCourseRenameOntoTakenName(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	if _, err := f.courseService.CreateCourse(ctx, newCourse("Compilers")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := f.courseService.CreateCourse(ctx, newCourse("Operating Systems"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Renames are not pre-checked for uniqueness; only the schema
	// constraint rejects the collision, so it surfaces as a storage
	// failure rather than a conflict.
	_, err = f.courseService.UpdateCourse(ctx, second.ID, newCourse("Compilers"))
	if !errors.Is(err, apperrors.ErrStorageFailure) {
		t.Fatalf("expected storage failure on constraint collision, got %v", err)
	}
	if errors.Is(err, apperrors.ErrConflict) {
		t.Fatal("rename collision must not be reported as a conflict")
	}
}

func TestDeleteCourseCascadesEnrollments(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	course, _ := f.courseService.CreateCourse(ctx, newCourse("Doomed Course"))
	keeper, _ := f.courseService.CreateCourse(ctx, newCourse("Surviving Course"))
	alice, _ := f.studentService.CreateStudent(ctx, newStudent("alice@example.com"))
	bob, _ := f.studentService.CreateStudent(ctx, newStudent("bob@example.com"))

	for _, studentID := range []int64{alice.ID, bob.ID} {
		if _, err := f.enrollmentService.CreateEnrollment(ctx, course.ID, studentID, newEnrollmentDetails()); err != nil {
			t.Fatalf("enroll failed: %v", err)
		}
	}
	if _, err := f.enrollmentService.CreateEnrollment(ctx, keeper.ID, alice.ID, newEnrollmentDetails()); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	deleted, err := f.courseService.DeleteCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 enrollments deleted, got %d", deleted)
	}

	remaining, _ := f.enrollmentService.GetAllEnrollments(ctx)
	if len(remaining) != 1 || remaining[0].CourseID != keeper.ID {
		t.Errorf("expected only the surviving course enrollment, got %+v", remaining)
	}
	if _, err := f.studentService.GetStudentByID(ctx, alice.ID); err != nil {
		t.Errorf("expected students to survive course delete: %v", err)
	}

	if _, err := f.courseService.DeleteCourse(ctx, course.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestGetStudentsInCourse(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	course, _ := f.courseService.CreateCourse(ctx, newCourse("Popular Course"))
	alice, _ := f.studentService.CreateStudent(ctx, newStudent("alice@example.com"))
	bob, _ := f.studentService.CreateStudent(ctx, newStudent("bob@example.com"))

	if _, err := f.enrollmentService.CreateEnrollment(ctx, course.ID, alice.ID, newEnrollmentDetails()); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if _, err := f.enrollmentService.CreateEnrollment(ctx, course.ID, bob.ID, newEnrollmentDetails()); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	students, err := f.courseService.GetStudentsInCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetStudentsInCourse failed: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}

	// Enrollments whose student row cannot be resolved are skipped
	delete(f.store.students, alice.ID)
	students, err = f.courseService.GetStudentsInCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetStudentsInCourse failed: %v", err)
	}
	if len(students) != 1 || students[0].ID != bob.ID {
		t.Errorf("expected only resolvable students, got %+v", students)
	}
}
