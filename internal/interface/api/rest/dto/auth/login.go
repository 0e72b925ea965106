package auth

type LoginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}
