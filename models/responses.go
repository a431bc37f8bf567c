package models

// TokenResponse is returned by successful register and login calls.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// NewTokenResponse wraps an issued token in the wire response.
func NewTokenResponse(token Token) TokenResponse {
	return TokenResponse{Success: true, Token: token.Bearer()}
}

// FieldErrors maps a request field name to a human-readable message.
// It is serialized as a flat JSON object, e.g. {"email": "Email is invalid"}.
type FieldErrors map[string]string

// ValidationResult is the outcome of validating a request payload.
type ValidationResult struct {
	Errors  FieldErrors
	IsValid bool
}

// Valid returns a successful [ValidationResult] with an empty error map.
func Valid() ValidationResult {
	return ValidationResult{Errors: FieldErrors{}, IsValid: true}
}
