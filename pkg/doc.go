// Package pkg provides shared utilities for the softsd storage engine.
//
// This package contains common functionality used across the card protocol,
// the file index and the stream consumers, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types forming the engine's error taxonomy
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with storage-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentCard, "card ready", "ocr", ocr)
//
// # Errors
//
// Every storage failure is returned as a value wrapping one of the sentinels:
//
//	if errors.Is(err, pkg.ErrTransportTimeout) {
//	    // token or busy poll bound exceeded
//	}
//
// [Classify] maps any error onto the taxonomy for diagnostics.
package pkg
