package cmd

import (
	"fmt"
	"sort"
	"strings"
)

// ListActionsCmd prints Fluxor action services and their methods; tracker
// services appear as tracker/{id}.
type ListActionsCmd struct {
	Prefix string `short:"p" long:"prefix" description:"only services whose name starts with prefix, e.g. tracker/"`
}

func (c *ListActionsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	actions := svc.WorkflowService().Actions()
	names := actions.Services()
	sort.Strings(names)
	for _, name := range names {
		if !strings.HasPrefix(name, c.Prefix) {
			continue
		}
		s := actions.Lookup(name)
		if s == nil {
			continue
		}
		fmt.Println(name)
		sigs := s.Methods()
		sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })
		for _, sig := range sigs {
			fmt.Printf("  %s\t%s\n", sig.Name, sig.Description)
		}
	}
	return nil
}
