package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New constructs the process-wide structured logger. JSON output so log
// aggregation can index fields; level comes from configuration.
func New(level string, pretty bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if pretty {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
