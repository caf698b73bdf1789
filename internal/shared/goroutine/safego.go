// Package goroutine wraps goroutine launches with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"helpdesk/internal/shared/logger"
)

// SafeGo starts fn on a new goroutine. A panic inside fn is turned into an
// error log carrying the goroutine name and stack instead of taking the
// process down.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
