//go:build debug
// +build debug

package batch

import (
	"fmt"
	"log/slog"
	"sync"
)

func DebugLog(format string, args ...interface{}) {
	slog.Debug(fmt.Sprintf(format, args...))
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		slog.Debug(fmt.Sprintf(format, args...))
	})
}
