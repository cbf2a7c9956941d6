// Package logx provides leveled logging with environment variable configuration.
//
// Environment Variables:
//   - LOG_LEVEL: Set the minimum log level (TRACE, DEBUG, INFO, WARN, ERROR, OFF)
//   - LOG_FORMAT: Set output format (console, json)
//   - LOG_COLOR: Enable/disable colored output (true/false, default: true)
//   - LOG_CALLER: Enable/disable caller information (true/false, default: true)
//
// Basic Usage:
//
//	logx.Info("Server starting on port %d", 8080)
//	logx.Warn("duplicate registration for %q", kind)
//
// Arguments of DEBUG and TRACE messages are rendered on a single line, so
// structs and maps stay readable:
//
//	LOG_LEVEL=TRACE go run ./examples/demo scenarios
//	[2025-06-08 18:57:52] [TRACE] handler.go:131: resolved "InvalidEvent" -> Response{Message:"bad",Code:400,Details:map{}}
//
// A *Logger satisfies the exceptx.Logger port, so tests can capture
// diagnostics by pointing an instance at a buffer:
//
//	logger := logx.New()
//	logger.SetOutput(&buf)
//	logger.SetLevel(logx.TraceLevel)
package logx
