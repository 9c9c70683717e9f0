package everify

import (
	"github.com/sirupsen/logrus"

	"github.com/everify/everify-go/internal/log"
	loglogrus "github.com/everify/everify-go/internal/log/logrus"
)

// Logger is the interface that loggers must implement for the SDK.
//
// For most use cases, only the format methods (Infof, Warningf, Errorf,
// Debugf) need meaningful implementations.
type Logger = log.Logger

// Kv is a helper type for structured logging key-value pairs.
type Kv = log.Kv

// NoopLogger discards all log output. It is the default logger.
var NoopLogger = log.Noop

// NewLogrusLogger returns a Logger backed by a logrus entry.
func NewLogrusLogger(entry *logrus.Entry) Logger {
	return loglogrus.NewLogrus(entry)
}
