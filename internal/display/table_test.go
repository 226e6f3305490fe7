package display

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/cinesala/auditorium/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDisplayShowSeats(t *testing.T) {
	listings := []domain.SeatListing{
		{Row: 1, Number: 1, Status: domain.SeatReserved, Price: decimal.NewFromFloat(5.0)},
		{Row: 1, Number: 2, Status: domain.SeatAvailable, Price: decimal.NewFromFloat(10.0)},
	}

	var buf bytes.Buffer
	d := NewTableDisplay(&buf)

	require.NoError(t, d.ShowSeats(slices.Values(listings)))

	want := "Fila      Número    Estado         Precio    \n" +
		strings.Repeat("-", 45) + "\n" +
		"1         1         Reserved       5.00\n" +
		"1         2         Available      10.00\n"

	assert.Equal(t, want, buf.String())
}

func TestTableDisplayHeaderAlignsWithRows(t *testing.T) {
	listings := []domain.SeatListing{
		{Row: 1, Number: 1, Status: domain.SeatReserved, Price: decimal.NewFromFloat(5.0)},
	}

	var buf bytes.Buffer
	d := NewTableDisplay(&buf)

	require.NoError(t, d.ShowSeats(slices.Values(listings)))

	lines := strings.Split(buf.String(), "\n")
	header, row := lines[0], lines[2]

	// fmt pads string verbs by runes, so the accented "Número" header must
	// not push the status column off the one the data rows use.
	headerCol := utf8.RuneCountInString(header[:strings.Index(header, "Estado")])
	rowCol := strings.Index(row, string(domain.SeatReserved))

	assert.Equal(t, headerCol, rowCol)
}

func TestTableDisplayShowSeatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	d := NewTableDisplay(&buf)

	require.NoError(t, d.ShowSeats(slices.Values([]domain.SeatListing{})))

	want := "Fila      Número    Estado         Precio    \n" +
		strings.Repeat("-", 45) + "\n"

	assert.Equal(t, want, buf.String())
}

func TestTableDisplayShowSeatsWriteError(t *testing.T) {
	d := NewTableDisplay(errWriter{})

	err := d.ShowSeats(slices.Values([]domain.SeatListing{}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write seat table")
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
