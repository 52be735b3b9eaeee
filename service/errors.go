package service

import "errors"

var (
	// ErrBackendUnavailable is returned when the upstream system cannot be reached.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrBackendAuth is returned when the upstream rejects the configured credentials.
	ErrBackendAuth = errors.New("backend authentication failed")
	// ErrNotFound is returned when the requested item does not exist upstream.
	ErrNotFound = errors.New("not found")
	// ErrConstruction is returned when a service cannot be built from its config.
	ErrConstruction = errors.New("service construction failed")
)
