package dto

// LoginResponse carries the signed access token back to the client.
type LoginResponse struct {
	Token string `json:"token"`
}

// GoogleLoginRequest carries the ID token obtained by the booking frontend
// from Google sign-in.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
