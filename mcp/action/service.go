package action

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/mcp-get/dispatch"
	"github.com/viant/mcp-get/internal/conv"
	"github.com/viant/mcp-get/mcp/tool"
	"github.com/viant/mcp-get/service"
)

// Prefix is prepended to the service identifier to form the action service name.
const Prefix = "tracker/"

// Caller executes a tool by name.
type Caller interface {
	Call(ctx context.Context, name string, args map[string]interface{}) (interface{}, error)
}

// ItemsOutput is the output of list actions.
type ItemsOutput struct {
	Items []*service.Item `json:"items"`
}

// ItemOutput is the output of getIssueDetails.
type ItemOutput struct {
	Item *service.Item `json:"item"`
}

// operation maps a workflow action method onto a tool method.
type operation struct {
	action      string
	method      string
	input       reflect.Type
	output      reflect.Type
	description string
}

var operations = []operation{
	{action: "getMyIssues", method: service.MethodMyItems, input: reflect.TypeOf(&dispatch.MyItemsRequest{}), output: reflect.TypeOf(&ItemsOutput{}), description: "Get recent issues assigned to me"},
	{action: "getIssueDetails", method: service.MethodItem, input: reflect.TypeOf(&dispatch.ItemRequest{}), output: reflect.TypeOf(&ItemOutput{}), description: "Get detailed information about a specific issue"},
	{action: "searchIssues", method: service.MethodSearch, input: reflect.TypeOf(&dispatch.SearchRequest{}), output: reflect.TypeOf(&ItemsOutput{}), description: "Search for issues by title or description"},
}

// Service exposes one registered tracker service as Fluxor actions, so that
// workflows reach issues through the same dispatch path as MCP callers.
type Service struct {
	id        string
	caller    Caller
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New builds the action service for the tracker service registered under id.
func New(id string, caller Caller) *Service {
	s := &Service{id: id, caller: caller, executors: map[string]types.Executable{}}
	for _, op := range operations {
		s.sigs = append(s.sigs, types.Signature{
			Name:        op.action,
			Description: op.description + " (" + id + ")",
			Input:       op.input,
			Output:      op.output,
		})
		s.executors[op.action] = s.executor(tool.NewName(id, op.method).String())
	}
	return s
}

func (s *Service) executor(toolName string) types.Executable {
	return func(ctx context.Context, input, output interface{}) error {
		args, err := conv.ToMap(input)
		if err != nil {
			return fmt.Errorf("%s: %w: %v", toolName, dispatch.ErrMalformedArguments, err)
		}
		result, err := s.caller.Call(ctx, toolName, args)
		if err != nil {
			return err
		}
		switch out := output.(type) {
		case nil:
		case *ItemsOutput:
			if items, ok := result.([]*service.Item); ok {
				out.Items = items
				return nil
			}
			return conv.Convert(result, &out.Items)
		case *ItemOutput:
			if item, ok := result.(*service.Item); ok {
				out.Item = item
				return nil
			}
			return conv.Convert(result, &out.Item)
		default:
			return conv.Convert(result, output)
		}
		return nil
	}
}

func (s *Service) Name() string { return Prefix + s.id }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
