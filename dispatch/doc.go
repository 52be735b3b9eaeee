// Package dispatch turns one (toolName, arguments) request into one response
// envelope. The tool name is split on its first underscore into a service
// identifier and a method identifier, the service is resolved through a
// Lookup, the arguments are validated against the method's input schema and
// decoded into a typed request, and the outcome, success or failure, is
// wrapped into an Envelope. Errors never escape Dispatch.
package dispatch
