package log

import "context"

// Logger is the context-aware logging interface used across the service.
// The context is accepted on every call so request-scoped fields can be attached.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the zap backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug (development) or production
	Encoding     string // console or json
	ColorEnabled bool
	Output       string // stdout (default) or stderr
}

type ctxKey string

// SessionIDKey is the context key under which a chat session id is carried.
const SessionIDKey ctxKey = "session_id"

// WithSessionID returns a child context carrying the given session id.
// Loggers attach it to every line written with that context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// SessionIDFromContext returns the session id stored in ctx, if any.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(SessionIDKey).(string)
	return v
}
