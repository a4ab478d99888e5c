package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Globals are flags shared by every command
type Globals struct {
	Verbose  bool   `short:"v" help:"Enable debug logging" env:"KITTYBID_VERBOSE"`
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"warn" env:"KITTYBID_LOG_LEVEL"`
	NoColor  bool   `help:"Disable coloured output" env:"KITTYBID_NO_COLOR"`

	logOut io.Writer
}

// Logger builds the process logger. --verbose wins over --log-level.
func (g *Globals) Logger() *log.Logger {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	if g.Verbose {
		level = log.DebugLevel
	}

	out := g.logOut
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "kittybid",
	})
}
