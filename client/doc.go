// Package client implements the forwarding side of the bridge: it relays a
// method and its params to a single remote JSON-RPC 2.0 endpoint over HTTP.
//
// Every call is a single attempt bounded by Config.Timeout (30 seconds by
// default). The remote result is returned as raw JSON, byte for byte. Any
// failure is reported as an *Error whose Kind tells timeouts, HTTP status
// failures, malformed bodies, remote JSON-RPC errors and network failures apart.
//
// Example:
//
//	cli, _ := client.New(client.Config{URL: "https://example.com/mcp", APIKey: key})
//	result, err := cli.Forward(ctx, "tools/list", struct{}{})
package client
