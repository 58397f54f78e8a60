// Package logging configures the structured logger used across the
// module. It wraps log/slog with level and format parsing; callers pass
// the resulting logger to the components that emit diagnostics.
package logging
