// Package registry provides the process-wide store mapping event labels
// to ordered lists of side-effect handlers, plus the introspection
// helpers (Fname, Docstring) the reporting tooling is built on.
package registry
