package badgerfx

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// zapLogger forwards badger's printf-style logs to zap.
type zapLogger struct {
	logger *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		logger: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *zapLogger) Debugf(format string, a ...any) {
	l.logger.Debug(message(format, a...))
}

func (l *zapLogger) Errorf(format string, a ...any) {
	l.logger.Error(message(format, a...))
}

func (l *zapLogger) Infof(format string, a ...any) {
	l.logger.Info(message(format, a...))
}

func (l *zapLogger) Warningf(format string, a ...any) {
	l.logger.Warn(message(format, a...))
}

// badger terminates most of its messages with a newline
func message(format string, a ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, a...), "\n")
}

var _ badger.Logger = (*zapLogger)(nil)
