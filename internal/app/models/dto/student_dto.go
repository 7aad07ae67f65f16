package dto

// CreateStudentRequest carries the fields for adding a student
type CreateStudentRequest struct {
	Name         string `json:"name" binding:"required" example:"Ayşe"`
	Surname      string `json:"surname" binding:"required" example:"Yılmaz"`
	Email        string `json:"email" binding:"required" example:"ayse.yilmaz@example.edu.tr"`
	Department   string `json:"department" binding:"required" example:"Computer Engineering"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// UpdateStudentRequest carries the fields for editing a student. All mutable
// fields are overwritten; the id comes from the path and never changes.
type UpdateStudentRequest struct {
	Name         string `json:"name" binding:"required"`
	Surname      string `json:"surname" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Department   string `json:"department" binding:"required"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// DeleteStudentResponse reports the cascade outcome of a student delete
type DeleteStudentResponse struct {
	Message            string `json:"message" example:"Student deleted"`
	DeletedEnrollments int64  `json:"deletedEnrollments" example:"3"`
}
