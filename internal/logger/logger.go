package logger

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support. Level methods
// (Info, Warnf, ...) come from the embedded entry.
type Logger struct {
	*logrus.Entry
}

// Setup configures the process-wide logger: JSON lines to out at the given level.
// Unknown levels fall back to info.
func Setup(level string, out io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger with user, tenant and request information. gin.Context
// satisfies context.Context and exposes the values set by the auth middleware.
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if email, ok := ctx.Value("email").(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	} else if user, ok := ctx.Value("user_id").(string); ok && user != "" {
		logger.Entry = logger.Entry.WithField("user", user)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}

	if orgID := ctx.Value("organization_id"); orgID != nil {
		logger.Entry = logger.Entry.WithField("organization_id", orgID)
	}
	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// ForOrganization is WithContext for code paths that know the tenant but run
// outside an authenticated request, such as webhooks and background jobs.
func ForOrganization(ctx context.Context, orgID interface{}) *Logger {
	return WithContext(ctx).WithField("organization_id", orgID)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
