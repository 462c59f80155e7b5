package users

import "errors"

var (
	ErrMissingFields   = errors.New("name, mobile and password are required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrMobileExists    = errors.New("mobile number already registered")
	ErrEmailExists     = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrOTPNotFound     = errors.New("no OTP requested for this number")
	ErrOTPMismatch     = errors.New("invalid OTP")
	ErrOTPExpired      = errors.New("OTP expired")
)
