package models

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	FirstName string    `json:"firstName" validate:"notblank"`
	LastName  string    `json:"lastName" validate:"notblank"`
	Email     string    `json:"email" validate:"notblank,email"`
	Password  string    `json:"password" validate:"notblank"`
	Location  *Location `json:"location,omitempty" validate:"omitempty"`
}

// LoginRequest is the body of POST /api/users/login. It carries the
// plaintext credential for the duration of a single request only.
type LoginRequest struct {
	Email    string `json:"email" validate:"notblank,email"`
	Password string `json:"password" validate:"notblank"`
}
