// Package logger provides structured logging for igunfollow.
//
// It wraps zerolog behind a small Logger interface:
// - levels debug, info, warn, error
// - fields attached with WithField/WithFields/WithError
// - colored console output on stderr, or JSON with Format "json"
// - an optional append-only JSON log file
//
// Basic Usage:
//
//	if err := logger.Initialize(&cfg.Logging, os.Stderr); err != nil {
//	    return err
//	}
//	logger.WithField("path", "data/following.html").Info("Export parsed")
//
// Tests use NewNopLogger or NewTestLogger to keep output quiet or to assert
// on what was logged.
package logger
