// Package server exposes the local side of the bridge: a JSON-RPC handler that
// answers the MCP handshake and relays tools/list and tools/call to a Forwarder.
//
// The stdio framing is owned by github.com/viant/jsonrpc; this package only
// consumes decoded requests and produces decoded responses. Forwarding
// failures never surface as protocol errors:
//   - tools/list degrades to an empty tool collection,
//   - tools/call reports the failure in-band with isError set.
//
// Typical wiring:
//
//	srv, _ := server.New(forwarder, server.WithImplementation(protoschema.Implementation{Name: "motley", Version: "0.1.0"}))
//	log.Fatal(srv.Stdio(ctx).ListenAndServe())
package server
