// Package syncmap offers a lightweight, generic, concurrency-safe map that
// keeps insertion order and never replaces an existing key. The service
// registry relies on both properties.
package syncmap
