package dto

// LoginRequest carries operator credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
	Username    string `json:"username" example:"admin"`
	RoleType    string `json:"roleType" example:"ADMIN"`
}
