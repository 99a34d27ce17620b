package pkg

import (
	"log"
	"os"
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

// LogLevel picks the most verbose level enabled by the debug flags
func LogLevel(debug, verbose bool) int {
	if verbose {
		return LogVerbose
	} else if debug {
		return LogDebug
	}
	return LogStandard
}

// InitLog redirects the standard logger to dest, the terminal is owned by the UI
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
