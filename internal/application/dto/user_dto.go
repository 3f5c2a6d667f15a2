package dto

// RegisterRequest entrada para registro: email y password (se hashea en el use case).
type RegisterRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// RegisteredUser datos públicos del usuario recién creado.
type RegisteredUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// RegisterResponse salida de POST /register.
type RegisterResponse struct {
	Message string         `json:"message"`
	Data    RegisteredUser `json:"data"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ChangePasswordRequest cuerpo de PUT /users/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}
