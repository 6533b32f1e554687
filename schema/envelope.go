package schema

import (
	"bytes"
	"encoding/json"
)

// Envelope is an outbound JSON-RPC 2.0 request.
type Envelope struct {
	Jsonrpc string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	Id      string      `json:"id"`
}

// NewEnvelope creates an envelope; nil params are sent as an empty object.
func NewEnvelope(id, method string, params interface{}) *Envelope {
	if params == nil {
		params = struct{}{}
	}
	return &Envelope{Jsonrpc: JSONRPCVersion, Method: method, Params: params, Id: id}
}

// Response is the remote reply. Result and Error keep the raw bytes so that
// the result can be relayed without re-encoding.
type Response struct {
	Id     json.RawMessage `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// HasError reports whether the error member carries a truthy value.
// Absent, null, false, 0 and "" count as no error.
func (r *Response) HasError() bool {
	switch string(bytes.TrimSpace(r.Error)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

// ErrorMessage returns error.message when it is a non-empty string,
// otherwise the raw JSON of the error member.
func (r *Response) ErrorMessage() string {
	remote := struct {
		Message interface{} `json:"message"`
	}{}
	if err := json.Unmarshal(r.Error, &remote); err == nil {
		if message, ok := remote.Message.(string); ok && message != "" {
			return message
		}
	}
	return string(bytes.TrimSpace(r.Error))
}
