package api

// RegisterRequest represents a request to register a new operator account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

// RegisterResponse represents a successful registration response
type RegisterResponse struct {
	UserID  string `json:"user_id"` // UUID of the created account
	Message string `json:"message"`
}

// SigninRequest represents an authentication request
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents a successful signin response.
// The access token is opaque to the client; it is attached to record
// store calls as a Bearer credential.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // access token lifetime in seconds
}

// ErrorResponse represents an error payload returned by the server
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
