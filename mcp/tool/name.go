package tool

import (
	"fmt"
	"strings"
)

// Separator joins a service identifier and a method identifier into a tool name.
const Separator = "_"

// Name represents tool name in the {service}_{method} form. Service
// identifiers never contain the separator, method identifiers may.
type Name string

// Service returns the segment before the first separator, or the whole name
// when there is none.
func (t Name) Service() string {
	tool := string(t)
	if idx := strings.Index(tool, Separator); idx != -1 {
		return tool[:idx]
	}
	return tool
}

// Method returns everything after the first separator.
func (t Name) Method() string {
	tool := string(t)
	if idx := strings.Index(tool, Separator); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

// Valid reports whether both the service and the method part are non-empty.
func (t Name) Valid() bool {
	return strings.Contains(string(t), Separator) && t.Service() != "" && t.Method() != ""
}

// HasService reports whether the name belongs to the given service identifier.
func (t Name) HasService(service string) bool {
	return strings.HasPrefix(string(t), service+Separator)
}

func (t Name) String() string {
	return string(t)
}

// NewName new name
func NewName(service, method string) Name {
	return Name(service + Separator + method)
}

// ValidateService checks that id can be used as a tool name prefix.
func ValidateService(id string) error {
	if id == "" {
		return fmt.Errorf("service identifier is empty")
	}
	if strings.Contains(id, Separator) {
		return fmt.Errorf("service identifier %q must not contain %q", id, Separator)
	}
	return nil
}
