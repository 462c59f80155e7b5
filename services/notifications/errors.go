package notifications

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUnknownChannel       = errors.New("unknown message channel")
)
