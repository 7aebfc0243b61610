// Package errs provides the typed errors shared by the tracker's domain,
// use-case and adapter layers.
//
// Every error type follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the parameter name and, where relevant, the offending value
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel so callers can classify without type switches
//
// Adapters classify failures by sentinel only: the HTTP layer maps
// ErrObjectNotFound onto its not-found policy and the value errors onto 400.
package errs
