package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// setupLogger points the logger at stderr, with colours only on a terminal.
func (a *App) setupLogger() {
	a.logger.SetOutput(a.stderr)
	a.logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isTerminal(a.stderr),
		FullTimestamp: true,
	})
	a.logger.SetLevel(logrus.InfoLevel)
	if a.in.verbose {
		a.logger.SetLevel(logrus.DebugLevel)
	}
}

func isTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}
