// Package bridge wires the forwarding client and the local MCP server into a
// runnable stdio process.
//
// Configuration comes from command line flags or, more commonly, the
// MOTLEY_API_URL and MOTLEY_API_KEY environment variables. Both are required:
// Run fails before any protocol traffic when either is missing. Diagnostics go
// to stderr so that stdout carries protocol frames only.
package bridge
