package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	protoschema "github.com/viant/mcp-protocol/schema"
)

// Initialize handles the initialize method
func (h *Handler) Initialize(ctx context.Context, request *jsonrpc.Request) (*protoschema.InitializeResult, *jsonrpc.Error) {
	params := protoschema.InitializeRequestParams{}
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, &params); err != nil {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse %v", err), request.Params)
		}
	}
	h.logger.Info().Str("client", params.ClientInfo.Name).Str("protocol", params.ProtocolVersion).Msg("client initialize")
	return &protoschema.InitializeResult{
		ProtocolVersion: h.protocolVersion,
		ServerInfo:      h.info,
		Capabilities:    protoschema.ServerCapabilities{Tools: &protoschema.ServerCapabilitiesTools{}},
	}, nil
}

// Ping handles the ping method
func (h *Handler) Ping(ctx context.Context, request *jsonrpc.Request) (*protoschema.PingResult, *jsonrpc.Error) {
	return &protoschema.PingResult{}, nil
}
