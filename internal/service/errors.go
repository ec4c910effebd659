package service

import "errors"

// Validation errors are raised before any network call and surfaced as
// inline messages; they never reach the commerce API.
var (
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrNoSession            = errors.New("no active checkout session")
	ErrNoAddressSelected    = errors.New("no shipping address selected")
	ErrUnknownAddress       = errors.New("address not found")
	ErrNoPaymentMethod      = errors.New("no payment method selected")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrIncompleteAddress    = errors.New("address requires recipient name, phone and street")
)
