package dto

// GoogleLoginResponse represents the response for Google login initiation
type GoogleLoginResponse struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state"`
}
