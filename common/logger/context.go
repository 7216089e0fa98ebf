package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. The auth middleware sets the principal's IDs here so every log
// line emitted while handling a request carries its tenant.
type LogFields struct {
	UserID         *int64
	OrganizationID *int64
}

// WithLogFields enriches context with structured log fields. Multiple calls
// merge fields, with newer non-nil values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := GetLogFields(ctx)
	if fields.UserID != nil {
		merged.UserID = fields.UserID
	}
	if fields.OrganizationID != nil {
		merged.OrganizationID = fields.OrganizationID
	}
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context. Returns empty LogFields if
// none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

// Ptr is a helper to create a pointer from a value.
func Ptr[T any](v T) *T {
	return &v
}
