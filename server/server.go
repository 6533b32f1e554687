package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc/transport"
	protoschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/motley/internal/logx"
)

// Forwarder relays a method call to the remote endpoint and returns its raw result.
type Forwarder interface {
	Forward(ctx context.Context, method string, params interface{}) (json.RawMessage, error)
}

// Server represents the local MCP endpoint
type Server struct {
	forwarder       Forwarder
	info            protoschema.Implementation
	protocolVersion string
	logger          zerolog.Logger
}

// NewHandler creates a handler for a single transport connection.
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler()
}

func (s *Server) newHandler() *Handler {
	return &Handler{Server: s}
}

// New creates a new Server instance
func New(forwarder Forwarder, options ...Option) (*Server, error) {
	if forwarder == nil {
		return nil, errors.New("forwarder was nil")
	}
	s := &Server{
		forwarder: forwarder,
		info: protoschema.Implementation{
			Name:    "motley",
			Version: "0.1.0",
		},
		protocolVersion: protoschema.LatestProtocolVersion,
		logger:          logx.Log,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}
