package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// ReportDir is where saved reports are written. Defaults to the
	// current working directory.
	ReportDir string
}

// Load reads an optional .env file and the environment. A missing .env
// is not an error; everything has a default.
func Load() Config {
	_ = godotenv.Load()

	dir := os.Getenv("REPORT_DIR")
	if dir == "" {
		dir = "."
	}
	return Config{ReportDir: dir}
}
