package server

import (
	"errors"

	"github.com/rs/zerolog"
	protoschema "github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithImplementation sets the server implementation.
func WithImplementation(implementation protoschema.Implementation) Option {
	return func(s *Server) error {
		if implementation.Name == "" {
			return errors.New("implementation name was empty")
		}
		s.info = implementation
		return nil
	}
}

// WithProtocolVersion sets the protocol version announced on initialize.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		s.protocolVersion = version
		return nil
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}
