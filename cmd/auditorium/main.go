package main

import (
	"os"

	"github.com/cinesala/auditorium/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
