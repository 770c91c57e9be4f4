// Package logging builds the slog loggers used across popon.
//
// Two output formats are supported: a compact console format for
// interactive use and line-delimited JSON for machine consumption.
// Console output collapses the component attribute into a message
// prefix and renders remaining attributes as key=value pairs.
package logging
