package dto

// CreateEnrollmentRequest carries the fields for enrolling a student in a
// course. ClassDate uses the YYYY-MM-DD form.
type CreateEnrollmentRequest struct {
	StudentID  int64   `json:"studentId" binding:"required" example:"1"`
	CourseID   int64   `json:"courseId" binding:"required" example:"2"`
	ClassDate  string  `json:"classDate" binding:"required" example:"2026-09-15"`
	Tuition    float64 `json:"tuition" example:"1500.50"`
	Attendance bool    `json:"attendance" example:"false"`
}

// UpdateEnrollmentRequest carries the fields for editing an enrollment.
// Student and course ids must both be present; the update re-resolves them.
type UpdateEnrollmentRequest struct {
	StudentID  int64   `json:"studentId" example:"1"`
	CourseID   int64   `json:"courseId" example:"2"`
	ClassDate  string  `json:"classDate" binding:"required" example:"2026-09-15"`
	Tuition    float64 `json:"tuition" example:"1500.50"`
	Attendance bool    `json:"attendance" example:"true"`
}
