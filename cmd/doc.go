// Package cmd implements the mcp-get command-line interface. Each file
// holds a single sub-command (serve, list-services, list-tools, tool, exec,
// list-actions, action, run); service initialisation shared between them
// lives in shared.go.
package cmd
