package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/viant/mcp-get/internal/conv"
	"github.com/viant/mcp-get/service"
)

// method binds a method identifier to a capability of service.Service.
type method struct {
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
	invoke   func(ctx context.Context, svc service.Service, args map[string]interface{}) (interface{}, error)
}

// methods is the closed method identifier to capability table.
var methods = map[string]*method{
	service.MethodMyItems: bind(service.MethodMyItems, func(ctx context.Context, svc service.Service, req *MyItemsRequest) (interface{}, error) {
		return asList(svc.MyItems(ctx, req.Limit))
	}),
	service.MethodItem: bind(service.MethodItem, func(ctx context.Context, svc service.Service, req *ItemRequest) (interface{}, error) {
		item, err := svc.Item(ctx, req.IssueID)
		if err == nil && item == nil {
			err = fmt.Errorf("issue %s: %w", req.IssueID, service.ErrNotFound)
		}
		return item, err
	}),
	service.MethodSearch: bind(service.MethodSearch, func(ctx context.Context, svc service.Service, req *SearchRequest) (interface{}, error) {
		return asList(svc.Search(ctx, req.Query, req.Limit))
	}),
}

// asList keeps an empty result a JSON array.
func asList(ret []*service.Item, err error) (interface{}, error) {
	if err == nil && ret == nil {
		ret = []*service.Item{}
	}
	return ret, err
}

func bind[T any](name string, call func(ctx context.Context, svc service.Service, req *T) (interface{}, error)) *method {
	schema := service.InputSchema(name)
	resolved, err := schema.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("dispatch: invalid input schema for %s: %v", name, err))
	}
	return &method{
		schema:   schema,
		resolved: resolved,
		invoke: func(ctx context.Context, svc service.Service, args map[string]interface{}) (interface{}, error) {
			req := new(T)
			if err := conv.Convert(args, req); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedArguments, err)
			}
			return call(ctx, svc, req)
		},
	}
}

// bindArguments normalises args to their JSON shape, applies property
// defaults and validates the result against the method schema.
func (m *method) bindArguments(args map[string]interface{}) (map[string]interface{}, error) {
	ret, err := conv.ToMap(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArguments, err)
	}
	if ret == nil {
		ret = make(map[string]interface{}, len(m.schema.Properties))
	}
	for name, prop := range m.schema.Properties {
		if _, ok := ret[name]; ok || len(prop.Default) == 0 {
			continue
		}
		var value interface{}
		if err := json.Unmarshal(prop.Default, &value); err != nil {
			return nil, fmt.Errorf("%w: default for %s: %v", ErrMalformedArguments, name, err)
		}
		ret[name] = value
	}
	if err := m.resolved.Validate(ret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArguments, err)
	}
	return ret, nil
}
