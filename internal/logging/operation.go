package logging

import (
	"context"
	"fmt"
	"time"
)

// FinishFunc closes an operation started with Operation. A nil error logs
// completion, anything else logs the failure.
type FinishFunc func(err error)

// Operation logs the start of a named unit of work and returns a context
// carrying its operation ID plus the function that logs its outcome.
//
//	ctx, finish := logging.Operation(ctx, logger, "create_service", "service_name", name)
//	defer func() { finish(err) }()
func Operation(ctx context.Context, logger *Logger, name string, fields ...interface{}) (context.Context, FinishFunc) {
	start := time.Now()
	operationID := fmt.Sprintf("%s_%d", name, start.UnixMilli())
	ctx = WithOperationID(ctx, operationID)

	l := logger.WithContext(ctx).With(append([]interface{}{"operation", name}, fields...)...)
	l.Info("Starting operation: " + name)

	return ctx, func(err error) {
		k, v := Int64("duration_ms", time.Since(start).Milliseconds())
		if err != nil {
			ek, ev := Err(err)
			l.Error("Operation failed: "+name, k, v, ek, ev)
			return
		}
		l.Info("Operation completed: "+name, k, v)
	}
}
