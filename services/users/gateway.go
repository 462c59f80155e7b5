package users

import "context"

// SMSGW sends text messages to a mobile number
type SMSGW interface {
	SendSMS(ctx context.Context, to, body string) error
}
