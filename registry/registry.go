package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/mcp-get/internal/syncmap"
	"github.com/viant/mcp-get/mcp/tool"
	"github.com/viant/mcp-get/service"
)

var (
	// ErrUnknownServiceKind is returned when no constructor exists for a kind.
	ErrUnknownServiceKind = errors.New("unknown service kind")
	// ErrAlreadyRegistered is returned when the identifier is already taken.
	ErrAlreadyRegistered = errors.New("service already registered")
	// ErrInvalidIdentifier is returned for identifiers that cannot prefix tool names.
	ErrInvalidIdentifier = errors.New("invalid service identifier")
)

// Registry maps service identifiers to constructed services. A second
// registration under a taken identifier is rejected; the first instance stays.
type Registry struct {
	kinds    map[string]service.Constructor
	services *syncmap.Map[service.Service]
	// serializes registrations so that construction and store are atomic
	mux sync.Mutex
}

// Option configures a Registry.
type Option func(*Registry)

// WithKind makes a backend kind available for registration.
func WithKind(kind string, ctor service.Constructor) Option {
	return func(r *Registry) {
		r.kinds[kind] = ctor
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		kinds:    map[string]service.Constructor{},
		services: syncmap.New[service.Service](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register constructs the service of cfg's kind (the identifier when no kind
// is set) and stores it under id. Nothing is stored when construction fails.
func (r *Registry) Register(ctx context.Context, id string, cfg *service.Config) (service.Service, error) {
	if err := tool.ValidateService(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	if cfg == nil {
		cfg = &service.Config{}
	}
	kind := cfg.KindOr(id)
	ctor, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownServiceKind, kind)
	}

	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.services.Get(id); ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, id)
	}

	svc, err := ctor(ctx, id, cfg)
	if err != nil {
		if errors.Is(err, service.ErrConstruction) {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		return nil, fmt.Errorf("%s: %w: %v", id, service.ErrConstruction, err)
	}
	if svc == nil {
		return nil, fmt.Errorf("%s: %w: constructor returned nil", id, service.ErrConstruction)
	}
	for _, aTool := range svc.Tools() {
		if name := tool.Name(aTool.Name); !name.HasService(id) || !name.Valid() {
			return nil, fmt.Errorf("%s: %w: tool %q is not prefixed with %q", id, service.ErrConstruction, aTool.Name, id+tool.Separator)
		}
	}
	r.services.PutIfAbsent(id, svc)
	return svc, nil
}

// Lookup returns the service registered under id; exact match only.
func (r *Registry) Lookup(id string) (service.Service, bool) {
	return r.services.Get(id)
}

// Tools concatenates the descriptors of every service in registration order.
// Colliding names are not de-duplicated.
func (r *Registry) Tools() []*service.Tool {
	var result []*service.Tool
	for _, svc := range r.services.Values() {
		result = append(result, svc.Tools()...)
	}
	return result
}

// Services returns a snapshot of registered services in registration order.
func (r *Registry) Services() []service.Service {
	return r.services.Values()
}

// IDs returns registered identifiers in registration order.
func (r *Registry) IDs() []string {
	return r.services.Keys()
}

// Kinds returns the known backend kinds, sorted.
func (r *Registry) Kinds() []string {
	ret := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
