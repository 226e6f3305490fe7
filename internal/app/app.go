package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/cinesala/auditorium/internal/display"
	"github.com/cinesala/auditorium/internal/domain"
	"github.com/cinesala/auditorium/internal/repository"
	appvalidator "github.com/cinesala/auditorium/internal/validator"
	"github.com/cinesala/auditorium/internal/vcs"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	stateRepo domain.StateRepository
	display   *display.TableDisplay
}

type config struct {
	BasePrice      float64 `validate:"gt=0"`
	DayDiscount    float64 `validate:"gt=0,lte=1"`
	SeniorDiscount float64 `validate:"gt=0,lte=1"`
	Rows           int     `validate:"min=1"`
	SeatsPerRow    int     `validate:"min=1"`
	StateFile      string  `validate:"required"`
	Env            string
}

func Run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil)).With("run_id", uuid.NewString())

	// A .env file is optional; its values act as flag defaults.
	_ = godotenv.Load()

	var cfg config

	flag.Float64Var(&cfg.BasePrice, "base-price", envFloat(logger, "AUDITORIUM_BASE_PRICE", 10.0), "Base seat price")
	flag.Float64Var(&cfg.DayDiscount, "day-discount", envFloat(logger, "AUDITORIUM_DAY_DISCOUNT", 0.20), "Discount rate on spectator days")
	flag.Float64Var(&cfg.SeniorDiscount, "senior-discount", envFloat(logger, "AUDITORIUM_SENIOR_DISCOUNT", 0.30), "Discount rate for senior visitors")

	flag.IntVar(&cfg.Rows, "rows", envInt(logger, "AUDITORIUM_ROWS", 3), "Rows to seed the room with")
	flag.IntVar(&cfg.SeatsPerRow, "seats-per-row", envInt(logger, "AUDITORIUM_SEATS_PER_ROW", 4), "Seats to seed per row")

	flag.StringVar(&cfg.StateFile, "state-file", envString("AUDITORIUM_STATE_FILE", "room_state.txt"), "Room state file")
	flag.StringVar(&cfg.Env, "env", envString("AUDITORIUM_ENV", "dev"), "Environment (dev|staging|prod)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	validator := appvalidator.NewValidator()

	app := &application{
		config:    cfg,
		logger:    logger,
		validator: validator,
		stateRepo: repository.NewTextFileStateRepository(cfg.StateFile),
		display:   display.NewTableDisplay(os.Stdout),
	}

	if err := app.validateConfig(); err != nil {
		return err
	}

	app.logger.Info("starting auditorium", "env", cfg.Env, "version", version)

	err := app.run(context.Background())
	if err != nil {
		app.logger.Error(err.Error())
		return err
	}

	return nil
}

func (app *application) validateConfig() error {
	err := app.validator.Struct(app.config)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fieldErr := range fieldErrors {
			app.logger.Error("invalid configuration", "field", fieldErr.Field(), "reason", appvalidator.ValidationMessage(fieldErr))
		}
		return errors.New("invalid configuration")
	}

	return err
}

// run walks a room through the full reservation cycle: seed seats, show
// them, reserve and cancel one, then save the state and reload it into a
// fresh room.
func (app *application) run(ctx context.Context) error {
	basePrice := decimal.NewFromFloat(app.config.BasePrice)
	dayDiscount := decimal.NewFromFloat(app.config.DayDiscount)
	seniorDiscount := decimal.NewFromFloat(app.config.SeniorDiscount)

	room, err := domain.NewRoom(basePrice, dayDiscount, seniorDiscount)
	if err != nil {
		return err
	}

	for row := 1; row <= app.config.Rows; row++ {
		for number := 1; number <= app.config.SeatsPerRow; number++ {
			if err := room.AddSeat(number, row); err != nil {
				return err
			}
		}
	}

	app.logger.Info("seeded room", "rows", app.config.Rows, "seats_per_row", app.config.SeatsPerRow, "base_price", basePrice.StringFixed(2))

	if err := app.display.ShowSeats(room.ListSeats()); err != nil {
		return err
	}

	app.logger.Info("reserving seat for a senior on a spectator day", "row", 1, "number", 1)

	if err := room.ReserveSeat(1, 1, true, true); err != nil {
		return err
	}

	seat, err := room.FindSeat(1, 1)
	if err != nil {
		return err
	}

	app.logger.Info("reserved seat", "seat", seat)

	if err := app.display.ShowSeats(room.ListSeats()); err != nil {
		return err
	}

	app.logger.Info("cancelling reservation", "row", 1, "number", 1)

	if err := room.CancelReservation(1, 1); err != nil {
		return err
	}

	if err := app.display.ShowSeats(room.ListSeats()); err != nil {
		return err
	}

	app.logger.Info("saving room state", "file", app.config.StateFile)

	if err := app.stateRepo.Save(ctx, room); err != nil {
		return err
	}

	app.logger.Info("reloading room state into a fresh room", "file", app.config.StateFile)

	restored, err := domain.NewRoom(basePrice, dayDiscount, seniorDiscount)
	if err != nil {
		return err
	}

	if err := app.stateRepo.Load(ctx, restored); err != nil {
		return err
	}

	return app.display.ShowSeats(restored.ListSeats())
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(logger *slog.Logger, key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.Warn("ignoring malformed environment value", "key", key, "value", v)
		return fallback
	}
	return f
}

func envInt(logger *slog.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warn("ignoring malformed environment value", "key", key, "value", v)
		return fallback
	}
	return n
}
