package config

import (
	"embed"
	"os"

	"shelf/internal/constants"
)

// Config is the global config for the app router. Host and Port are needed for absolute URL generation.
type Config struct {
	Env              string
	Host             string
	Port             string
	LogFile          string
	CookieSecure     bool
	DisableLogColors bool
	EnableStackTrace bool
	StaticFS         embed.FS
}

func NewConfigFromEnvironment(staticFS embed.FS) Config {
	env := os.Getenv("ENV")

	return Config{
		Env:              env,
		Host:             os.Getenv("HOST"),
		Port:             portOrDefault(os.Getenv("PORT")),
		LogFile:          os.Getenv("LOG_FILE"),
		CookieSecure:     env == constants.EnvProduction,
		DisableLogColors: env == constants.EnvProduction,
		EnableStackTrace: env == constants.EnvDevelopment,
		StaticFS:         staticFS,
	}
}

// NewTestConfig returns a config suitable for in-process app tests.
func NewTestConfig(staticFS embed.FS) Config {
	return Config{
		Env:              constants.EnvTest,
		Host:             "localhost",
		Port:             "0",
		CookieSecure:     false,
		DisableLogColors: true,
		EnableStackTrace: true,
		StaticFS:         staticFS,
	}
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func portOrDefault(port string) string {
	if port == "" {
		return "3000"
	}
	return port
}
