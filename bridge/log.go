package bridge

import "go.uber.org/zap"

// logger traces perform and box-binding lifecycles at debug level.
// It defaults to a no-op; applications opt in via SetLogger.
var logger = zap.NewNop()

// SetLogger replaces the package logger. Passing nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
