package models

import "time"

// OTPTTL is how long a one-time password stays valid
const OTPTTL = 5 * time.Minute

// OTP represents a one-time password for password reset. Mobile is the key.
type OTP struct {
	Mobile    string `json:"mobile"`
	Code      string `json:"code"`
	ExpiresAt string `json:"expiresAt"`
}

// OTPRequest represents a request for a password reset code
type OTPRequest struct {
	Mobile string `json:"mobile"`
}

// ResetPasswordRequest represents a password reset with an OTP
type ResetPasswordRequest struct {
	Mobile      string `json:"mobile"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user,omitempty"`
}
