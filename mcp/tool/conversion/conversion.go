package conversion

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/viant/mcp-get/dispatch"
	"github.com/viant/mcp-get/internal/conv"
	"github.com/viant/mcp-get/service"
	schema "github.com/viant/mcp-protocol/schema"
)

// BuildTool converts a tracker tool descriptor into MCP tool metadata.
func BuildTool(aTool *service.Tool) (schema.Tool, error) {
	inputSchema, err := InputSchema(aTool.InputSchema)
	if err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", aTool.Name, err)
	}
	return schema.Tool{Name: aTool.Name, Description: conv.Pointer(aTool.Description), InputSchema: inputSchema}, nil
}

// InputSchema flattens a JSON Schema object into the MCP tool input schema,
// keeping every property keyword (type, description, default, minimum, ...).
func InputSchema(in *jsonschema.Schema) (schema.ToolInputSchema, error) {
	ret := schema.ToolInputSchema{Type: "object"}
	if in == nil {
		return ret, nil
	}
	if in.Type != "" {
		ret.Type = in.Type
	}
	ret.Required = append(ret.Required, in.Required...)
	if len(in.Properties) == 0 {
		return ret, nil
	}
	ret.Properties = make(map[string]map[string]interface{}, len(in.Properties))
	for name, prop := range in.Properties {
		data, err := json.Marshal(prop)
		if err != nil {
			return ret, fmt.Errorf("property %s: %w", name, err)
		}
		var property map[string]interface{}
		if err := json.Unmarshal(data, &property); err != nil {
			return ret, fmt.Errorf("property %s: %w", name, err)
		}
		ret.Properties[name] = property
	}
	return ret, nil
}

// CallToolResult converts a dispatch envelope into an MCP call result.
func CallToolResult(envelope *dispatch.Envelope) *schema.CallToolResult {
	ret := &schema.CallToolResult{}
	for _, content := range envelope.Content {
		ret.Content = append(ret.Content, schema.CallToolResultContentElem{Type: content.Type, Text: content.Text})
	}
	if envelope.IsError {
		ret.IsError = conv.Pointer(true)
	}
	return ret
}
