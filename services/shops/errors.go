package shops

import "errors"

var (
	ErrShopNameRequired = errors.New("shop name is required")
	ErrShopLimitReached = errors.New("shop limit reached for the current plan")
	ErrShopNotFound     = errors.New("shop not found")
	ErrShopForbidden    = errors.New("shop belongs to another user")
	ErrOwnerNotFound    = errors.New("owner not found")
)
