package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON URL (defaults to $MCP_GET_CONFIG, then environment only)"`
	Env    string `short:"e" long:"env" description:"dotenv file loaded before reading the environment" default:".env"`
	Debug  bool   `short:"d" long:"debug" description:"enable debug logging"`

	Serve        *ServeCmd        `command:"serve"         description:"Start MCP server exposing the tracker tools (HTTP, or stdio with --stdio)"`
	ListServices *ListServicesCmd `command:"list-services" description:"List registered tracker services"`
	ListTools    *ListToolsCmd    `command:"list-tools"    description:"List all registered tools"`
	Tool         *ToolCmd         `command:"tool"          description:"Show detailed info about one MCP tool"`
	Exec         *ExecCmd         `command:"exec"          description:"Execute a tool and print its response envelope"`
	ListActions  *ListActionsCmd  `command:"list-actions"  description:"List Fluxor services and their actions"`
	Action       *ActionCmd       `command:"action"        description:"Show detailed info about one Fluxor action"`
	Run          *RunCmd          `command:"run"           description:"Run a workflow"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "list-services":
		o.ListServices = &ListServicesCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "action":
		o.Action = &ActionCmd{}
	case "run":
		o.Run = &RunCmd{}
	}
}
