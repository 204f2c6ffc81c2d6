// Package logging configures the logrus logger shared by the CLI and the
// resolution engine.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a logger writing plain text to w. The default level is warn
// so per-entry probe diagnostics stay hidden; verbose shows them, quiet
// leaves only errors.
func New(w io.Writer, verbose, quiet, noColor bool) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    noColor,
	})
	switch {
	case verbose:
		l.SetLevel(log.DebugLevel)
	case quiet:
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.WarnLevel)
	}
	return l
}
