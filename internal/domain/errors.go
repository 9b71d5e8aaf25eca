package domain

import "errors"

// Cart errors. Surfaced as user-facing messages, never fatal.
var (
	ErrCartLimitExceeded = errors.New("quantity exceeds the allowed maximum for this item")
	ErrItemUnavailable   = errors.New("item is unavailable or out of stock")
	ErrItemNotFound      = errors.New("menu item not found")
)

// Order errors.
var (
	ErrEmptyCart          = errors.New("cannot place an order with an empty cart")
	ErrInvalidCardDetails = errors.New("invalid card details")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrReasonRequired     = errors.New("rejection reason is required")
	ErrOrderNotFound      = errors.New("order not found")
)
