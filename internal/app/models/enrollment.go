package models

import "time"

// Enrollment links one Student to one Course. The (student_id, course_id)
// pair is unique: a student cannot be enrolled in the same course twice.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	ClassDate  time.Time `json:"classDate" db:"class_date"`
	Tuition    float64   `json:"tuition" db:"tuition"`
	Attendance bool      `json:"attendance" db:"attendance"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
