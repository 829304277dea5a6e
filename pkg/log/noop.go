package log

import "context"

// NewNoop returns a Logger that discards everything. Intended for tests.
func NewNoop() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any) {}

func (noopLogger) Debugf(ctx context.Context, template string, arg ...any) {}

func (noopLogger) Info(ctx context.Context, arg ...any) {}

func (noopLogger) Infof(ctx context.Context, template string, arg ...any) {}

func (noopLogger) Warn(ctx context.Context, arg ...any) {}

func (noopLogger) Warnf(ctx context.Context, template string, arg ...any) {}

func (noopLogger) Error(ctx context.Context, arg ...any) {}

func (noopLogger) Errorf(ctx context.Context, template string, arg ...any) {}

func (noopLogger) Fatal(ctx context.Context, arg ...any) {}

func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}
