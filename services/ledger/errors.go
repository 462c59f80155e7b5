package ledger

import "errors"

var (
	ErrCustomerRequired = errors.New("customer name is required")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrCustomerNotFound = errors.New("customer not found")
)
