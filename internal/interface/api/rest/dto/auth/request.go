package auth

type (
	SignupRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	LoginRequest struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
)
