package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"

	"shelf/internal/app"
	"shelf/internal/config"
	"shelf/internal/constants"
	"shelf/static"
)

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := config.NewConfigFromEnvironment(static.FS)

	if cfg.Env == constants.EnvDevelopment {
		fiberlog.SetLevel(fiberlog.LevelDebug)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		fiberlog.SetOutput(f)
	}

	a := app.New(&cfg)

	log.Fatal(a.Listen(cfg.Addr()))
}
