package billing

import "errors"

var (
	ErrUnknownPlan        = errors.New("unknown plan")
	ErrInvalidBilling     = errors.New("billing must be monthly or yearly")
	ErrMissingFields      = errors.New("plan, amount, method, sender number and transaction id are required")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentNotPending  = errors.New("payment is not pending")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
)
