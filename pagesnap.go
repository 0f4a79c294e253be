// Package pagesnap captures a single rendered web page and normalizes it
// into a structured record: canonical metadata, a noise-free HTML fragment,
// a Markdown rendering, plain text, and a screenshot reference.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package pagesnap
