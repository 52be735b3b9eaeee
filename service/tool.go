package service

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/viant/mcp-get/mcp/tool"
)

// Method identifiers every backend advertises.
const (
	MethodMyItems = "get_my_issues"
	MethodItem    = "get_issue_details"
	MethodSearch  = "search_issues"
)

// Methods lists the method identifiers in advertisement order.
var Methods = []string{MethodMyItems, MethodItem, MethodSearch}

// Tool describes one callable operation.
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// Vocabulary customises descriptor wording for a backend.
type Vocabulary struct {
	// Backend is the human readable backend name, e.g. "Linear".
	Backend string
	// Noun is the singular item noun, e.g. "issue".
	Noun string
}

func (v Vocabulary) noun() string {
	if v.Noun == "" {
		return "issue"
	}
	return v.Noun
}

// StandardTools builds the descriptors of the three standard methods for the
// service registered under id.
func StandardTools(id string, v Vocabulary) []*Tool {
	noun := v.noun()
	return []*Tool{
		{
			Name:        tool.NewName(id, MethodMyItems).String(),
			Description: fmt.Sprintf("Get recent %ss assigned to me from %s", noun, v.Backend),
			InputSchema: InputSchema(MethodMyItems),
		},
		{
			Name:        tool.NewName(id, MethodItem).String(),
			Description: fmt.Sprintf("Get detailed information about a specific %s %s", v.Backend, noun),
			InputSchema: InputSchema(MethodItem),
		},
		{
			Name:        tool.NewName(id, MethodSearch).String(),
			Description: fmt.Sprintf("Search for %s %ss by title or description", v.Backend, noun),
			InputSchema: InputSchema(MethodSearch),
		},
	}
}

// InputSchema returns a fresh copy of the input schema declared for method,
// or nil for an unknown method.
func InputSchema(method string) *jsonschema.Schema {
	switch method {
	case MethodMyItems:
		return &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"limit": limitSchema("Number of issues to return (default: 10)"),
			},
		}
	case MethodItem:
		return &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"issueId": {
					Type:        "string",
					Description: "The ID of the issue to get details for",
					MinLength:   intPtr(1),
				},
			},
			Required: []string{"issueId"},
		}
	case MethodSearch:
		return &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query": {
					Type:        "string",
					Description: "Search query",
					MinLength:   intPtr(1),
				},
				"limit": limitSchema("Number of results to return (default: 10)"),
			},
			Required: []string{"query"},
		}
	}
	return nil
}

func limitSchema(description string) *jsonschema.Schema {
	minimum := float64(1)
	return &jsonschema.Schema{
		Type:        "integer",
		Description: description,
		Default:     json.RawMessage(fmt.Sprint(DefaultLimit)),
		Minimum:     &minimum,
	}
}

func intPtr(v int) *int { return &v }
