// Package mcp wires tracker services into MCP. Its Service type loads the
// configuration, registers the configured trackers, routes tool calls
// through the dispatcher and exposes the tools over the viant HTTP transport
// or the stdio transport. Every tracker is also available to Fluxor
// workflows as a tracker/{id} action service.
package mcp
