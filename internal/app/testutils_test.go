package app

import (
	"io"
	"log/slog"

	"github.com/cinesala/auditorium/internal/display"
	"github.com/cinesala/auditorium/internal/mocks"
	"github.com/cinesala/auditorium/internal/validator"
)

func newTestApplication(opts ...func(*application)) *application {
	app := &application{
		config: config{
			BasePrice:      10.0,
			DayDiscount:    0.20,
			SeniorDiscount: 0.30,
			Rows:           1,
			SeatsPerRow:    2,
			StateFile:      "room_state.txt",
			Env:            "test",
		},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: validator.NewValidator(),
		stateRepo: &mocks.MockStateRepo{},
		display:   display.NewTableDisplay(io.Discard),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}
