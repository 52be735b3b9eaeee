package main

import (
	"os"

	"github.com/viant/mcp-get/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
