package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidPayload  = errors.New("invalid payment provider payload")
)
