package dto

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// UserResponse is returned when user info is needed (e.g. after login or share).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// ShareRequest names the user to share every owned list with, by username or
// email (at least one required).
type ShareRequest struct {
	Username string `json:"username" binding:"omitempty,min=1,max=120"`
	Email    string `json:"email" binding:"omitempty,email"`
}
