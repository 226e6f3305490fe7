package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cinesala/auditorium/internal/domain"
)

// TextFileStateRepository keeps a room's seat state in a plain text file,
// one comma-separated record per seat.
type TextFileStateRepository struct {
	path string
}

func NewTextFileStateRepository(path string) *TextFileStateRepository {
	return &TextFileStateRepository{
		path: path,
	}
}

// Save writes one line per seat in insertion order:
// row,number,status,price with the price at two decimals.
func (r *TextFileStateRepository) Save(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create state file: %w", err)
	}

	w := bufio.NewWriter(f)

	for l := range room.ListSeats() {
		if _, err := fmt.Fprintf(w, "%d,%d,%s,%s\n", l.Row, l.Number, l.Status, l.Price.StringFixed(2)); err != nil {
			f.Close()
			return fmt.Errorf("write state file: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write state file: %w", err)
	}

	return f.Close()
}

// Load appends every persisted seat to room at the room's current base
// price. The price column is read but not applied: a seat saved as Reserved
// comes back reserved with no discounts. Loading does not deduplicate
// against seats already present in the room.
func (r *TextFileStateRepository) Load(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open state file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0

	for sc.Scan() {
		line++

		fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
		if len(fields) != 4 {
			return fmt.Errorf("state file line %d: expected 4 fields, got %d", line, len(fields))
		}

		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("state file line %d: row: %w", line, err)
		}

		number, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("state file line %d: number: %w", line, err)
		}

		reserved := domain.SeatStatus(fields[2]) == domain.SeatReserved

		if err := room.RestoreSeat(number, row, reserved); err != nil {
			return fmt.Errorf("state file line %d: %w", line, err)
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read state file: %w", err)
	}

	return nil
}
