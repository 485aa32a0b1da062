// Package cli implements the zoh-hokej-ics command: a single no-argument
// entry point that regenerates the calendar files and exits non-zero on any
// fetch or parse failure so the caller can skip publishing.
package cli
