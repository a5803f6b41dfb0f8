package logger

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

const sentryFlushTimeout = 2 * time.Second

// Fields represents structured log fields
type Fields map[string]interface{}

var debugEnabled bool

func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// InitSentry turns on error reporting. An empty DSN leaves Sentry off and
// returns a no-op flush.
func InitSentry(dsn, environment, release string) (flush func(), err error) {
	if dsn == "" {
		return func() {}, nil
	}
	err = sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     "harmondrill@" + release,
	})
	if err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(sentryFlushTimeout) }, nil
}

func sentryEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

func breadcrumb(level sentry.Level, msg string, fields Fields) {
	if !sentryEnabled() {
		return
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Type:     string(level),
		Category: "log",
		Message:  msg,
		Data:     fields,
		Level:    level,
	})
}

func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s %v", msg, formatFields(fields))
	breadcrumb(sentry.LevelInfo, msg, fields)
}

func Warn(msg string, fields Fields) {
	log.Printf("[WARN] %s %v", msg, formatFields(fields))
	breadcrumb(sentry.LevelWarning, msg, fields)
}

// Debug is dropped unless SetDebug(true) was called.
func Debug(msg string, fields Fields) {
	if !debugEnabled {
		return
	}
	log.Printf("[DEBUG] %s %v", msg, formatFields(fields))
	breadcrumb(sentry.LevelDebug, msg, fields)
}

// Error logs and sends the error to Sentry when it is configured.
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v %v", msg, err, formatFields(fields))

	if !sentryEnabled() {
		return
	}
	hub := sentry.CurrentHub()
	hub.WithScope(func(scope *sentry.Scope) {
		for key, value := range fields {
			scope.SetContext(key, map[string]interface{}{
				"value": value,
			})
		}
		if sessionID, ok := fields["session_id"].(string); ok {
			scope.SetTag("session_id", sessionID)
		}
		hub.CaptureException(err)
	})
}

func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
