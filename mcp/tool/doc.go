// Package tool contains the tool naming convention shared by services,
// the dispatcher and both MCP transports: a tool name is the service
// identifier and the method identifier joined by a single underscore.
package tool
