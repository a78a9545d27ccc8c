package payment

import "errors"

var (
	// ErrInvalidCoin indicates the inserted amount is not an accepted denomination
	ErrInvalidCoin = errors.New("payment.invalid_coin")

	// ErrInsufficientBalance indicates the balance cannot cover the requested deduction
	ErrInsufficientBalance = errors.New("payment.insufficient_balance")

	// ErrInvalidAmount indicates a malformed monetary amount
	ErrInvalidAmount = errors.New("payment.invalid_amount")
)
