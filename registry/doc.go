// Package registry owns the constructed service instances of a process,
// keyed by service identifier, together with the constructors of every known
// backend kind. It is populated once at startup and read concurrently by the
// dispatcher afterwards.
package registry
