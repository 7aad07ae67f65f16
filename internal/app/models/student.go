package models

// Student defines the student model based on the 'students' table.
// ProfileImage is an opaque storage key; the service only compares it for
// equality to decide whether a replaced image should be removed.
type Student struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Name         string `json:"name" db:"name" example:"Ayşe"`
	Surname      string `json:"surname" db:"surname" example:"Yılmaz"`
	Email        string `json:"email" db:"email" example:"ayse.yilmaz@example.edu.tr"`
	Department   string `json:"department" db:"department" example:"Computer Engineering"`
	ProfileImage string `json:"profileImage,omitempty" db:"profile_image"`
}
