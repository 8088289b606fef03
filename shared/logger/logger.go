package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger instance set up by Init.
var Logger *logrus.Logger

// Init configures structured JSON logging for a service.
func Init(serviceName string) *logrus.Logger {
	Logger = logrus.New()

	Logger.SetOutput(os.Stdout)

	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err == nil {
			Logger.SetLevel(lvl)
		}
	} else {
		Logger.SetLevel(logrus.InfoLevel)
	}

	// Tag every entry with the originating service
	Logger = Logger.WithField("service", serviceName).Logger

	return Logger
}

// WithRequestID attaches the request-id field when one is present.
func WithRequestID(logger *logrus.Logger, requestID string) *logrus.Entry {
	if requestID == "" {
		return logrus.NewEntry(logger)
	}
	return logger.WithField("request_id", requestID)
}
