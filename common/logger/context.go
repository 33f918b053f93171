package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so a handler that sets the interview once gets
// it on every log line emitted further down the submission pipeline.
type LogFields struct {
	FeedbackID   *int64  // feedback_session row id
	SubmissionID *int64  // snowflake id of one feedback submission
	Interview    *string // interview filename, e.g. "docassemble.Foo:data/questions/main.yml"
	Repo         *string // "owner/repo" the issue is filed against
	Component    string  // Component name (OTel semantic convention style, e.g., "feedback.service.submission")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.FeedbackID != nil {
		result.FeedbackID = new.FeedbackID
	}
	if new.SubmissionID != nil {
		result.SubmissionID = new.SubmissionID
	}
	if new.Interview != nil {
		result.Interview = new.Interview
	}
	if new.Repo != nil {
		result.Repo = new.Repo
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{FeedbackID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like feedback bodies or error messages.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
