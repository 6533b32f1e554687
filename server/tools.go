package server

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc"
	protoschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/motley/schema"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (interface{}, *jsonrpc.Error) {
	result, err := h.forwarder.Forward(ctx, schema.MethodToolsList, struct{}{})
	if err != nil {
		return listToolsFallback(h.logger, err), nil
	}
	return result, nil
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (interface{}, *jsonrpc.Error) {
	params, err := schema.NewCallToolParams(request.Params)
	if err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	result, err := h.forwarder.Forward(ctx, schema.MethodToolsCall, params)
	if err != nil {
		return callToolFallback(h.logger, err), nil
	}
	return result, nil
}

// listToolsFallback turns a remote outage into "no tools available".
func listToolsFallback(logger zerolog.Logger, err error) *protoschema.ListToolsResult {
	logger.Error().Str("error", err.Error()).Msg("Error listing tools")
	return schema.NewEmptyListToolsResult()
}

// callToolFallback reports the failure to the calling agent as tool output.
func callToolFallback(logger zerolog.Logger, err error) *protoschema.CallToolResult {
	logger.Error().Str("error", err.Error()).Msg("Error calling tool")
	return schema.NewCallToolErrorResult(err.Error())
}
