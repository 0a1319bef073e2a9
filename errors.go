package credit

import "errors"

// Entity not found.
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrNoPeople       = errors.New("no people found")
)

// Selection out of range.
var ErrInvalidSelection = errors.New("invalid product selection")

// Malformed numeric input.
var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidRate     = errors.New("invalid interest rate")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Business rule violations.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOverpayment         = errors.New("cannot pay more than due")
	ErrNoDue               = errors.New("no due amount")
	ErrDuplicatePerson     = errors.New("person already exists")
)
