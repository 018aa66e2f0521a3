package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"

	"shelf/internal/router"
	"shelf/internal/tui"
)

func main() {
	register := flag.Bool("register", false, "start on the sign up form")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// the terminal belongs to the UI; logs go to LOG_FILE or nowhere
	var logOutput io.Writer = io.Discard
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		logOutput = f
	}
	fiberlog.SetOutput(logOutput)

	start := tui.LoginRoute
	if *register {
		start = tui.RegisterRoute
	}

	routes := router.NewStream(start)
	defer routes.Close()

	model, err := tui.New(routes)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer model.Close()

	if _, err := tea.NewProgram(model).Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
