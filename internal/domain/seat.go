package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "Available"
	SeatReserved  SeatStatus = "Reserved"
)

// Rates applied when pricing a reservation. Rooms carry their own configured
// rates, but Reserve does not read them yet.
// TODO: price reservations with the owning room's configured rates.
var (
	reserveDayRate    = decimal.NewFromFloat(0.20)
	reserveSeniorRate = decimal.NewFromFloat(0.30)
)

// Seat is a single bookable unit. Its identity within a room is the
// (row, number) pair; uniqueness is the room's concern, not the seat's.
type Seat struct {
	number       int
	row          int
	basePrice    decimal.Decimal
	currentPrice decimal.Decimal
	reserved     bool
}

func NewSeat(number, row int, basePrice decimal.Decimal) (*Seat, error) {
	if err := checkPositive("seat number", number); err != nil {
		return nil, err
	}
	if err := checkPositive("seat row", row); err != nil {
		return nil, err
	}
	if err := checkPositiveDecimal("base price", basePrice); err != nil {
		return nil, err
	}

	return &Seat{
		number:       number,
		row:          row,
		basePrice:    basePrice,
		currentPrice: basePrice,
	}, nil
}

func (s *Seat) Number() int { return s.number }

func (s *Seat) Row() int { return s.row }

func (s *Seat) Reserved() bool { return s.reserved }

// CurrentPrice is the base price while the seat is available and the
// discounted price while it is reserved.
func (s *Seat) CurrentPrice() decimal.Decimal { return s.currentPrice }

func (s *Seat) Status() SeatStatus {
	if s.reserved {
		return SeatReserved
	}

	return SeatAvailable
}

// Reserve marks the seat as taken and prices it. The discounts are additive:
// 0.20 on a discount day plus 0.30 for a senior, off the base price.
func (s *Seat) Reserve(senior, discountDay bool) error {
	if s.reserved {
		return fmt.Errorf("seat %d-%d: %w", s.row, s.number, ErrSeatAlreadyReserved)
	}

	discount := decimal.Zero
	if discountDay {
		discount = discount.Add(reserveDayRate)
	}
	if senior {
		discount = discount.Add(reserveSeniorRate)
	}

	s.currentPrice = s.basePrice.Mul(decimal.NewFromInt(1).Sub(discount))
	s.reserved = true

	return nil
}

// Cancel releases the seat and restores its base price.
func (s *Seat) Cancel() error {
	if !s.reserved {
		return fmt.Errorf("seat %d-%d: %w", s.row, s.number, ErrSeatNotReserved)
	}

	s.reserved = false
	s.currentPrice = s.basePrice

	return nil
}

func (s *Seat) String() string {
	return fmt.Sprintf("Seat %d-%d: %s, Price: %s", s.row, s.number, s.Status(), s.currentPrice.StringFixed(2))
}
