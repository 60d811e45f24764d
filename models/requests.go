package models

// LoginRequest is the JSON body accepted by POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the JSON body accepted by POST /auth/register.
// The role of the created account is always RoleUser; it cannot be chosen
// by the caller.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest is the JSON body accepted by POST /usuarios. Unlike
// public registration the caller chooses the role. When Password is empty
// the account receives a default password.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password,omitempty"`
}

// RatingRequest is the JSON body accepted by POST /valoraciones.
// The user reference is taken from the request's SecurityContext, never from
// the body.
type RatingRequest struct {
	GameID  string `json:"game_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}
