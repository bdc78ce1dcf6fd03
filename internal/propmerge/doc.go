// Package propmerge adds the MCP server settings to Spring configuration
// files.
//
// Files are selected by path globs. Properties files get each missing key
// inserted in sorted position. YAML files get the missing keys merged into
// the spring.ai.mcp.server mapping of their first document. Keys that are
// already present keep their value in both formats.
package propmerge
