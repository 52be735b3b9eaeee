package cmd

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/mcp-get/internal/conv"
)

// ActionCmd shows detailed information about one Fluxor action method.
type ActionCmd struct {
	Name string `short:"n" long:"name" description:"identifier in form service/method, e.g. tracker/linear/searchIssues" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

type actionField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type actionInfo struct {
	Service     string        `json:"service"`
	Method      string        `json:"method"`
	Description string        `json:"description"`
	InputType   string        `json:"inputType"`
	OutputType  string        `json:"outputType"`
	Input       []actionField `json:"input,omitempty"`
	Output      []actionField `json:"output,omitempty"`
}

func (c *ActionCmd) Execute(_ []string) error {
	// service names may contain "/", the method is the last segment
	idx := strings.LastIndex(c.Name, "/")
	if idx <= 0 || idx == len(c.Name)-1 {
		return fmt.Errorf("name must be service/method")
	}
	svcName, method := c.Name[:idx], c.Name[idx+1:]

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	s := svc.WorkflowService().Actions().Lookup(svcName)
	if s == nil {
		return fmt.Errorf("service %q not found", svcName)
	}
	sig := s.Methods().Lookup(method)
	if sig == nil {
		return fmt.Errorf("method %q not found in service %q", method, svcName)
	}

	info := &actionInfo{
		Service:     svcName,
		Method:      method,
		Description: sig.Description,
		InputType:   typeString(sig.Input),
		OutputType:  typeString(sig.Output),
		Input:       fieldsOf(sig.Input),
		Output:      fieldsOf(sig.Output),
	}
	if c.JSON {
		text, err := conv.Indent(info)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}
	fmt.Printf("Service : %s\n", info.Service)
	fmt.Printf("Method  : %s\n", info.Method)
	fmt.Printf("Desc    : %s\n", info.Description)
	fmt.Printf("Input   : %s\n", info.InputType)
	printFields(info.Input)
	fmt.Printf("Output  : %s\n", info.OutputType)
	printFields(info.Output)
	return nil
}

func printFields(fields []actionField) {
	for _, f := range fields {
		fmt.Printf("    %s\t%s\n", f.Name, f.Type)
	}
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	if t.Kind() == reflect.Pointer {
		return "*" + t.Elem().String()
	}
	return t.String()
}

// fieldsOf lists the JSON visible fields of a struct type.
func fieldsOf(t reflect.Type) []actionField {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var ret []actionField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get("json"); tag != "" {
			if tag == "-" {
				continue
			}
			if parts := strings.Split(tag, ","); parts[0] != "" {
				name = parts[0]
			}
		}
		ret = append(ret, actionField{Name: name, Type: f.Type.String()})
	}
	return ret
}
