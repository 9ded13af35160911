// Package serializer writes documents as text, JSON or YAML to stdout or a file.
//
// FormatText delegates to the value's RenderText method when it has one.
package serializer

// StdoutURI is the special output path meaning stdout.
const StdoutURI = "-"
