// Package logging provides structured logging utilities for the Workspace
// MCP server.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (email anonymization)
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "gmail.search")
//	logger.Info("searching messages",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("user operation",
//	    logging.UserHash(identity))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - Impersonated user emails are hashed to prevent PII leakage while
//     allowing correlation
//   - Key material is never logged
package logging
