package dto

// RegisterRequest describes the account creation payload. Role defaults to
// driver when omitted; companyId is required for company users.
type RegisterRequest struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
	CompanyID *int64 `json:"companyId,omitempty"`
}

// LoginRequest describes login/password payload.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
