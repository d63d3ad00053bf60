package errors

import (
	"errors"
)

var (
	ErrCartNotFound      = errors.New("cart code not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrStoreNotFound     = errors.New("store not found")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrInvalidBudget     = errors.New("budget must be a positive amount")
	ErrInvalidRadius     = errors.New("radius must be a positive number")
	ErrCartCodeExhausted = errors.New("failed generating an unused cart code")
)
