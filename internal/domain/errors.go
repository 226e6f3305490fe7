package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrDuplicateSeat       = errors.New("seat already exists")
	ErrSeatNotFound        = errors.New("seat does not exist")
	ErrSeatAlreadyReserved = errors.New("seat is already reserved")
	ErrSeatNotReserved     = errors.New("seat is not reserved")
)

func checkPositive(what string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidArgument, what)
	}

	return nil
}

func checkPositiveDecimal(what string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidArgument, what)
	}

	return nil
}
