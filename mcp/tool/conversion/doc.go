// Package conversion translates tracker tool descriptors and dispatch
// envelopes into their viant MCP protocol counterparts.
package conversion
