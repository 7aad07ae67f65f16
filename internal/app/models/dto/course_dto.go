package dto

// CreateCourseRequest carries the fields for adding a course
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required" example:"CS101"`
	Credit      int    `json:"credit" binding:"required,min=1" example:"3"`
	Description string `json:"description" binding:"required" example:"Introduction to programming"`
	Semester    string `json:"semester" binding:"required" example:"2026-FALL"`
}

// UpdateCourseRequest carries the fields for editing a course
type UpdateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Credit      int    `json:"credit" binding:"required,min=1"`
	Description string `json:"description" binding:"required"`
	Semester    string `json:"semester" binding:"required"`
}

// DeleteCourseResponse reports the cascade outcome of a course delete
type DeleteCourseResponse struct {
	Message            string `json:"message" example:"Course deleted"`
	DeletedEnrollments int64  `json:"deletedEnrollments" example:"12"`
}
