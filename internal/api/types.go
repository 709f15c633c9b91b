package api

// TokenResponse is the authentication endpoint's success payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterUserInput is the admin user-registration request body. Role is
// the wire value the remote service expects ("admin" or "médico").
type RegisterUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// PredictionResult is the prediction endpoint's payload: an opaque,
// server-computed profile index plus its textual description.
type PredictionResult struct {
	Profile     int    `json:"profile"`
	Description string `json:"description"`
}

// detailBody is the error shape the remote service returns on failures.
type detailBody struct {
	Detail string `json:"detail"`
}
