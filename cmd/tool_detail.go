package cmd

import (
	"fmt"

	"github.com/viant/mcp-get/internal/conv"
)

// ToolCmd prints metadata and input schema of a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (service_method)" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

type toolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	description, schema, ok := svc.ToolMetadata(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}
	info := &toolInfo{Name: c.Name, Description: description, InputSchema: schema}

	if c.JSON {
		text, err := conv.Indent(info)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}
	fmt.Printf("Name : %s\n", info.Name)
	fmt.Printf("Desc : %s\n", info.Description)
	text, err := conv.Indent(info.InputSchema)
	if err != nil {
		return err
	}
	fmt.Printf("InputSchema:\n%s\n", text)
	return nil
}
