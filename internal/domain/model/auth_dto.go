package model

// RegisterDTO is the request body for creating an account.
type RegisterDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginDTO is the request body for authenticating.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
