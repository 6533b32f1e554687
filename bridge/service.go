package bridge

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc/transport/server/stdio"
	protoschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/motley/client"
	"github.com/viant/motley/internal/logx"
	mcpserver "github.com/viant/motley/server"
)

type Service struct {
	options *Options
	client  *client.Client
	server  *mcpserver.Server
	logger  zerolog.Logger
	// input feeds the stdio endpoint and is closed on shutdown.
	input io.ReadCloser
}

// New constructs a bridge Service from validated options.
func New(options *Options) (*Service, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	aClient, err := client.New(options.Config(), client.WithLogger(logx.Log))
	if err != nil {
		return nil, err
	}
	srv, err := mcpserver.New(aClient,
		mcpserver.WithImplementation(protoschema.Implementation{Name: options.Name, Version: options.Version}),
		mcpserver.WithLogger(logx.Log))
	if err != nil {
		return nil, err
	}
	return &Service{options: options, client: aClient, server: srv, logger: logx.Log, input: os.Stdin}, nil
}

// Stdio returns a JSON-RPC server over the service input and standard output that relays tool calls to the remote endpoint.
func (s *Service) Stdio(ctx context.Context) *stdio.Server {
	return s.server.Stdio(ctx, stdio.WithReader(s.input))
}

// Serve runs the stdio endpoint until the input stream ends or ctx is done.
// In-flight forwards are not awaited on shutdown.
func (s *Service) Serve(ctx context.Context) error {
	s.logger.Info().Msg("Starting Motley MCP passthrough server")
	s.logger.Info().Str("url", s.options.URL).Msg("Remote endpoint")
	s.logger.Info().Msg("API key configured: Yes (redacted)")

	srv := s.Stdio(ctx)
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe()
	}()
	s.logger.Info().Msg("Server connected and ready")

	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return s.shutdown()
		}
		return err
	case <-ctx.Done():
		return s.shutdown()
	}
}

func (s *Service) shutdown() error {
	s.logger.Info().Msg("Shutting down...")
	return s.input.Close()
}
