package models

// LoginResponse is the JSON body returned by a successful login or
// registration. Token holds the compact signed JWT; the remaining fields
// mirror the authenticated user's public attributes.
type LoginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// ErrorResponse is the uniform JSON error body returned by the HTTP layer.
type ErrorResponse struct {
	Error string `json:"error"`
}
