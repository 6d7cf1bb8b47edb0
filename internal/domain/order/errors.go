package order

import "errors"

var (
	ErrNotFound      = errors.New("order not found")
	ErrAlreadyExists = errors.New("order already exists")
	ErrInvalidStatus = errors.New("invalid order status")
)
