package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldDevice is the structured logging key for the device address.
	FieldDevice = "device"
	// FieldCommand is the structured logging key for the command in flight.
	FieldCommand = "command"
	// FieldSessionID is the structured logging key for transport session ids.
	FieldSessionID = "session_id"
)

type contextKey string

const (
	deviceKey  contextKey = "device"
	commandKey contextKey = "command"
)

// WithDevice annotates ctx with the device address.
func WithDevice(ctx context.Context, address string) context.Context {
	if address == "" {
		return ctx
	}
	return context.WithValue(ctx, deviceKey, address)
}

// WithCommand annotates ctx with the name of the command being exchanged.
func WithCommand(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, commandKey, name)
}

// ContextFields extracts the standard attributes carried by ctx.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if v, ok := ctx.Value(deviceKey).(string); ok && v != "" {
		fields = append(fields, slog.String(FieldDevice, v))
	}
	if v, ok := ctx.Value(commandKey).(string); ok && v != "" {
		fields = append(fields, slog.String(FieldCommand, v))
	}
	return fields
}

// WithContext returns a logger augmented with the fields carried by ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, f)
	}
	return logger.With(args...)
}

// WithSessionID returns a logger that stamps every record with the session
// id. Unlike device and command, the id lives for the whole session rather
// than one call, so it is bound to the logger instead of the context.
func WithSessionID(logger *slog.Logger, sessionID string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if sessionID == "" {
		return logger
	}
	return logger.With(slog.String(FieldSessionID, sessionID))
}
