package cmd

import "fmt"

// ListServicesCmd prints every registered tracker service with its tool count.
type ListServicesCmd struct {
	Kinds bool `long:"kinds" description:"list available backend kinds instead"`
}

func (c *ListServicesCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	reg := svc.Registry()
	if c.Kinds {
		for _, kind := range reg.Kinds() {
			fmt.Println(kind)
		}
		return nil
	}
	for _, registered := range reg.Services() {
		fmt.Printf("%s\t%d tools\n", registered.ID(), len(registered.Tools()))
	}
	return nil
}
