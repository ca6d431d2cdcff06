package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field constructors used across the service, re-exported so callers
// depend on this package rather than on zap directly.

func String(key, val string) Field {
	return zap.String(key, val)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Error(err error) Field {
	return zap.Error(err)
}
