package domain

import (
	"context"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Default discount rates for rooms created with NewRoomWithDefaults.
var (
	DefaultDayDiscount    = decimal.NewFromFloat(0.20)
	DefaultSeniorDiscount = decimal.NewFromFloat(0.30)
)

// Room is an auditorium's seat inventory. Seats are unique by (row, number)
// and kept in insertion order; new seats inherit the room's base price.
// A Room is not safe for concurrent use.
type Room struct {
	basePrice      decimal.Decimal
	dayDiscount    decimal.Decimal
	seniorDiscount decimal.Decimal
	seats          []*Seat
}

// SeatListing is one row of a room listing, ready for rendering or
// persistence.
type SeatListing struct {
	Row    int
	Number int
	Status SeatStatus
	Price  decimal.Decimal
}

// StateRepository persists a room's seat state and restores it into a room.
type StateRepository interface {
	Save(ctx context.Context, room *Room) error
	Load(ctx context.Context, room *Room) error
}

func NewRoom(basePrice, dayDiscount, seniorDiscount decimal.Decimal) (*Room, error) {
	if err := checkPositiveDecimal("base price", basePrice); err != nil {
		return nil, err
	}
	if err := checkPositiveDecimal("day discount", dayDiscount); err != nil {
		return nil, err
	}
	if err := checkPositiveDecimal("senior discount", seniorDiscount); err != nil {
		return nil, err
	}

	if dayDiscount.GreaterThan(decimal.NewFromInt(1)) || seniorDiscount.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: discounts cannot exceed 100%%", ErrInvalidArgument)
	}

	return &Room{
		basePrice:      basePrice,
		dayDiscount:    dayDiscount,
		seniorDiscount: seniorDiscount,
	}, nil
}

func NewRoomWithDefaults(basePrice decimal.Decimal) (*Room, error) {
	return NewRoom(basePrice, DefaultDayDiscount, DefaultSeniorDiscount)
}

func (r *Room) BasePrice() decimal.Decimal { return r.basePrice }

func (r *Room) DayDiscount() decimal.Decimal { return r.dayDiscount }

func (r *Room) SeniorDiscount() decimal.Decimal { return r.seniorDiscount }

func (r *Room) SeatCount() int { return len(r.seats) }

// AddSeat creates a seat at the room's base price and appends it.
func (r *Room) AddSeat(number, row int) error {
	if err := checkPositive("seat number", number); err != nil {
		return err
	}
	if err := checkPositive("seat row", row); err != nil {
		return err
	}

	for _, s := range r.seats {
		if s.number == number && s.row == row {
			return fmt.Errorf("seat %d-%d: %w", row, number, ErrDuplicateSeat)
		}
	}

	seat, err := NewSeat(number, row, r.basePrice)
	if err != nil {
		return err
	}

	r.seats = append(r.seats, seat)

	return nil
}

// FindSeat returns the seat at (row, number). The returned seat is the
// room's own; mutations through it show up in subsequent listings.
func (r *Room) FindSeat(number, row int) (*Seat, error) {
	if err := checkPositive("seat number", number); err != nil {
		return nil, err
	}
	if err := checkPositive("seat row", row); err != nil {
		return nil, err
	}

	for _, s := range r.seats {
		if s.number == number && s.row == row {
			return s, nil
		}
	}

	return nil, fmt.Errorf("seat %d-%d: %w", row, number, ErrSeatNotFound)
}

func (r *Room) ReserveSeat(number, row int, senior, discountDay bool) error {
	seat, err := r.FindSeat(number, row)
	if err != nil {
		return err
	}

	return seat.Reserve(senior, discountDay)
}

func (r *Room) CancelReservation(number, row int) error {
	seat, err := r.FindSeat(number, row)
	if err != nil {
		return err
	}

	return seat.Cancel()
}

// ListSeats yields one listing per seat in insertion order. The sequence is
// computed lazily and can be ranged over any number of times.
func (r *Room) ListSeats() iter.Seq[SeatListing] {
	return func(yield func(SeatListing) bool) {
		for _, s := range r.seats {
			l := SeatListing{
				Row:    s.row,
				Number: s.number,
				Status: s.Status(),
				Price:  s.currentPrice,
			}

			if !yield(l) {
				return
			}
		}
	}
}

// RestoreSeat appends a reloaded seat priced at the room's current base
// price, skipping the duplicate check AddSeat performs. A reserved seat is
// re-reserved with both discount flags off; the discount basis of a saved
// reservation is not recoverable.
func (r *Room) RestoreSeat(number, row int, reserved bool) error {
	seat, err := NewSeat(number, row, r.basePrice)
	if err != nil {
		return err
	}

	if reserved {
		if err := seat.Reserve(false, false); err != nil {
			return err
		}
	}

	r.seats = append(r.seats, seat)

	return nil
}
