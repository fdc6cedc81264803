package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	AccountID uint   `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}
