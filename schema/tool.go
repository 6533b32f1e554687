package schema

import (
	"bytes"
	"encoding/json"

	protoschema "github.com/viant/mcp-protocol/schema"
)

var emptyObject = json.RawMessage(`{}`)

// CallToolParams holds the parameters of a tools/call request. Arguments stay
// raw so they are forwarded exactly as received.
type CallToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// NewCallToolParams decodes tools/call params; missing or null arguments
// become an empty object.
func NewCallToolParams(data []byte) (*CallToolParams, error) {
	ret := &CallToolParams{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, ret); err != nil {
			return nil, err
		}
	}
	if trimmed := bytes.TrimSpace(ret.Arguments); len(trimmed) == 0 || string(trimmed) == "null" {
		ret.Arguments = emptyObject
	}
	return ret, nil
}

// NewEmptyListToolsResult returns {"tools":[]}.
func NewEmptyListToolsResult() *protoschema.ListToolsResult {
	return &protoschema.ListToolsResult{Tools: []protoschema.Tool{}}
}

// NewCallToolErrorResult reports message as a tool error.
func NewCallToolErrorResult(message string) *protoschema.CallToolResult {
	isError := true
	return &protoschema.CallToolResult{
		Content: []protoschema.CallToolResultContentElem{
			protoschema.TextContent{Type: "text", Text: "Error: " + message},
		},
		IsError: &isError,
	}
}
