// Package layout rewrites a human-authored layout template — named
// placeholders like "{timestamp} {loglevel} {message}" — into a
// positional format string of "%<index>:<width>s" conversions, such as
// "%0:s %2:-7s". Go's fmt package does not read this notation, and no
// renderer in this module consumes it. It has no teacher counterpart: none of the
// example repos expose a template language over their formatters, so
// this package is built directly from the transform's documented
// input/output pairs rather than adapted from existing code.
package layout
