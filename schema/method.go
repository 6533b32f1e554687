package schema

import protoschema "github.com/viant/mcp-protocol/schema"

// Methods served locally or relayed to the remote endpoint.
const (
	MethodInitialize              = protoschema.MethodInitialize
	MethodPing                    = protoschema.MethodPing
	MethodToolsList               = protoschema.MethodToolsList
	MethodToolsCall               = protoschema.MethodToolsCall
	MethodNotificationInitialized = protoschema.MethodNotificationInitialized
)

// JSONRPCVersion is the version string carried by every outbound envelope.
const JSONRPCVersion = "2.0"
