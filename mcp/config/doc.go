// Package config defines the YAML/JSON configuration of the MCP server: server
// options, tracker service entries and workflow builtins, plus the
// environment fallback used when no configuration file is given.
package config
