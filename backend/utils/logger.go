package utils

import (
	"log"
	"os"
)

// LoggerConfig controls where and how the application logger writes.
type LoggerConfig struct {
	// Output stream (os.Stdout, a file, ...)
	Output *os.File
	// Enable ANSI colors for the console prefix
	EnableColors bool
}

// InitLogger builds the application logger used by main and the request
// logging middleware.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Course Catalog] "
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m"
	}

	return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
}
