package repo

import "errors"

var (
	ErrItemNotFound = errors.New("inventory item not found")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)
