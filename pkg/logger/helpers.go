package logger

import (
	"time"

	"github.com/rs/zerolog"
)

// LogExtraction logs how many usernames an export produced
func LogExtraction(path, parser string, count int, elapsed time.Duration) {
	log := GetLogger().WithFields(map[string]interface{}{
		"path":      path,
		"parser":    parser,
		"usernames": count,
		"duration":  elapsed,
	})

	if count == 0 {
		// An empty export usually means the file layout changed
		log.Warn("Export yielded no usernames")
		return
	}
	log.Info("Export parsed")
}

// LogIgnoreList logs the outcome of loading the ignore list
func LogIgnoreList(path string, entries int, found bool) {
	log := GetLogger().WithFields(map[string]interface{}{
		"path":    path,
		"entries": entries,
	})

	if !found {
		log.Debug("Ignore list not found, nothing will be excluded")
		return
	}
	log.Info("Ignore list loaded")
}

// LogComponentStart logs when a component starts
func LogComponentStart(component string, config map[string]interface{}) {
	log := GetLogger().WithField("component", component)

	if len(config) > 0 {
		log = log.WithFields(config)
	}

	log.Debug("Component started")
}

// LogMetrics logs the counts of a finished comparison
func LogMetrics(operation string, metrics map[string]interface{}) {
	fields := map[string]interface{}{
		"operation": operation,
	}
	for k, v := range metrics {
		fields[k] = v
	}

	GetLogger().InfoWithFields("Comparison finished", fields)
}

// NewNopLogger creates a no-operation logger for testing
func NewNopLogger() Logger {
	return &nopLogger{}
}

// nopLogger is a logger that does nothing (useful for testing)
type nopLogger struct{}

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) GetZerolog() *zerolog.Logger                               { return nil }
