package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

func GetLogger() *logrus.Logger {
	return logg
}

// ApplyLogLevel parses the configured level; unknown values keep info.
func ApplyLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logg.Warnf("unknown log level %q, keeping info", level)
		return
	}
	logg.SetLevel(parsed)
}
