package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide structured logger. It stays a no-op until Init runs,
// which keeps tests quiet.
var Log = zap.NewNop()

// Init replaces Log with a production or development logger.
func Init(production bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
