package dto

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=1"`
	Username    string `json:"username" binding:"required,min=1,max=50"`
	DisplayName string `json:"displayName" binding:"required,min=1,max=120"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RequestOTPRequest is the JSON body for POST /auth/request-otp.
type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest is the JSON body for POST /auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// ForgotPasswordRequest is the JSON body for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}
