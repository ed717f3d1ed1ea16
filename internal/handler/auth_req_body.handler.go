package handler

type RegisterRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	CaptchaToken string `json:"captchaToken"`
}

type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	CaptchaToken string `json:"captchaToken"`
}

type VerifyOTPRequest struct {
	UserID string `json:"userId"`
	OTP    string `json:"otp"`
}

type ForgotPasswordRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type ResetPasswordRequest struct {
	OTP         string `json:"otp"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
