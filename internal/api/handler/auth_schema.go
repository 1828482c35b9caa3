package handler

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}
