package app

import (
	"io"

	"github.com/Gobd/apidocopenapi/internal/config"
	"github.com/sirupsen/logrus"
)

// NewLogger returns the command's logger. debug shows everything, verbose
// adds file level progress to the default info messages and silent drops all
// output.
func NewLogger(cfg config.Config, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !cfg.Colorize,
	})

	switch {
	case cfg.Silent:
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
	case cfg.Debug:
		log.SetLevel(logrus.TraceLevel)
	case cfg.Verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
