package utils

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	loggerOnce sync.Once
	logger     *log.Logger
)

// Logger returns the process wide logger, writing to stderr at info level
// until SetLogLevel says otherwise.
func Logger() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "gomesh",
			Level:           log.InfoLevel,
		})
	})
	return logger
}

// SetLogLevel parses one of debug, info, warn, error or fatal.
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger().SetLevel(lvl)
	return nil
}

func LogDebug(msg string, args ...interface{}) {
	Logger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	Logger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	Logger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	Logger().Errorf(msg, args...)
}
