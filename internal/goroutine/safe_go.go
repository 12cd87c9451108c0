package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/hirenow/hirenow-backend/internal/logger"
)

// SafeGo запускает горутину с обработкой panic. Паника фоновой горутины
// не должна ронять процесс: событие логируется со стеком, горутина умирает.
func SafeGo(fn func()) {
	go func() {
		defer recoverPanic()
		fn()
	}()
}

// SafeGoWithContext запускает горутину с контекстом и обработкой panic.
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer recoverPanic()
		fn(ctx)
	}()
}

func recoverPanic() {
	if r := recover(); r != nil {
		if logger.Log != nil {
			logger.Log.Errorf("panic в горутине: %v\n%s", r, debug.Stack())
		}
	}
}
