package display

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/cinesala/auditorium/internal/domain"
)

// TableDisplay renders seat listings as a fixed-width console table.
type TableDisplay struct {
	w io.Writer
}

func NewTableDisplay(w io.Writer) *TableDisplay {
	return &TableDisplay{
		w: w,
	}
}

// ShowSeats writes a header row, a separator line and one row per seat.
func (d *TableDisplay) ShowSeats(seats iter.Seq[domain.SeatListing]) error {
	if _, err := fmt.Fprintf(d.w, "%-10s%-10s%-15s%-10s\n", "Fila", "Número", "Estado", "Precio"); err != nil {
		return fmt.Errorf("write seat table: %w", err)
	}

	if _, err := fmt.Fprintln(d.w, strings.Repeat("-", 45)); err != nil {
		return fmt.Errorf("write seat table: %w", err)
	}

	for l := range seats {
		if _, err := fmt.Fprintf(d.w, "%-10d%-10d%-15s%s\n", l.Row, l.Number, l.Status, l.Price.StringFixed(2)); err != nil {
			return fmt.Errorf("write seat table: %w", err)
		}
	}

	return nil
}
