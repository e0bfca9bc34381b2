// Package binder parses HTML form submissions into typed request structs.
//
// The package handles the two browser form encodings (URL-encoded and
// multipart) and binds values by `form:"..."` struct tags using reflection.
// Multi-value fields such as checkbox groups bind to slices, and optional
// fields can be modeled as pointers. Fields absent from the submission keep
// their zero value; type conversion failures are reported as binding errors.
package binder
