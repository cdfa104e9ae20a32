// Package error provides the coded error type shared by all jcal packages.
//
// Package: error
// Title: jcal Error Handling
// Description: Structured errors carrying a Code, a Severity, the failing
//              operation and free-form details. Every failure raised by the
//              calendar, time point and format engine packages is an *Error, so
//              callers can branch on the code instead of matching messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-14 v0.2.0: Calendar and format engine codes, errors.As based lookups
//
// Usage:
//   import mdwerror "github.com/msto63/jcal/foundation/core/error"
//
//   err := mdwerror.New("time component out of range").
//     WithCode(mdwerror.CodeValueOutOfRange).
//     WithOperation("jtime.New").
//     WithDetail("hour", 24)
//
//   if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//     // reject the input
//   }
package error
