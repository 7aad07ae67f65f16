package models

// Course represents a course offering based on the 'courses' table.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Credit      int    `json:"credit" db:"credit"`
	Description string `json:"description" db:"description"`
	Semester    string `json:"semester" db:"semester"`
}
