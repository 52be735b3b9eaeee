// Package conv provides small helpers to convert between arbitrary Go values.
// Convert performs a best-effort JSON round-trip which is sufficient for
// coercing tool arguments into typed requests and results into workflow
// outputs; Indent renders response text.
package conv
