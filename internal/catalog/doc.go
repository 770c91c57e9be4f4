// Package catalog persists a record of completed conversions in a
// SQLite database so past runs can be listed and inspected from the CLI.
package catalog
