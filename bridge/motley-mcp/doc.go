// Command motley-mcp is a local stdio MCP server that relays tools/list and
// tools/call to a remote Motley JSON-RPC endpoint.
//
// Usage:
//
//	MOTLEY_API_URL=https://example.com/mcp MOTLEY_API_KEY=... motley-mcp
//
// The process exits with status 1 and a diagnostic on stderr when either
// variable is missing.
package main
