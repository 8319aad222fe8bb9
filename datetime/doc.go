// Package datetime implements the TOML datetime value model: a single
// type subsuming RFC 3339's offset date-time, local date-time, local
// date, and local time, along with the parsing, rendering, UTC
// normalization, and partial ordering TOML defines over it.
package datetime
