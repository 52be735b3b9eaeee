package service

import "context"

// DefaultLimit is used when a caller does not specify how many items to return.
const DefaultLimit = 10

// Service is a pluggable issue tracker backend. Implementations capture their
// configuration at construction time and never mutate it afterwards.
type Service interface {
	// ID returns the identifier the service was registered under.
	ID() string

	// MyItems returns items owned by the calling identity, most recently
	// updated first, truncated to limit.
	MyItems(ctx context.Context, limit int) ([]*Item, error)

	// Item returns a single item; ErrNotFound when it does not exist upstream.
	Item(ctx context.Context, id string) (*Item, error)

	// Search returns items whose title or description contains query
	// (case-insensitive), ordered and truncated like MyItems.
	Search(ctx context.Context, query string, limit int) ([]*Item, error)

	// Tools describes the operations the service exposes. Every name is
	// prefixed with ID() and a single underscore.
	Tools() []*Tool
}

// Constructor builds a Service registered under id.
type Constructor func(ctx context.Context, id string, cfg *Config) (Service, error)
