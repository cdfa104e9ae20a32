// Package log provides structured logging for jcal.
//
// Package: log
// Title: jcal Structured Logging
// Description: A small leveled logger with persistent fields, JSON, text and
//              logfmt output, and integration with the coded errors from
//              foundation/core/error. Loggers are immutable: With* methods
//              return configured copies, so a package can keep its own named
//              logger without affecting others.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-14 v0.2.0: Removed async buffering and timers, deterministic field order
//
// Usage:
//   logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//   logger.WithName("i18n").Debug("locale table loaded", log.Fields{"locale": "fa"})
package log
