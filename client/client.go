package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	authtransport "github.com/viant/motley/client/auth/transport"
	"github.com/viant/motley/internal/logx"
	"github.com/viant/motley/schema"
)

// previewLimit caps params and result previews in diagnostics.
const previewLimit = 200

var errMissingResult = errors.New("response has neither result nor error")

// Client forwards JSON-RPC calls to the remote endpoint.
type Client struct {
	config        Config
	httpClient    *http.Client
	baseTransport http.RoundTripper
	newID         func() string
	logger        zerolog.Logger
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Forward sends method with params as one JSON-RPC request and returns the
// raw result. params are encoded as given; nil is sent as an empty object.
func (c *Client) Forward(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	envelope := schema.NewEnvelope(c.newID(), method, params)
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, c.fail(newUnreachableError(method, fmt.Errorf("failed to encode request: %w", err)))
	}
	c.logger.Info().Str("method", method).Str("id", envelope.Id).
		Str("params", logx.Preview(envelope.Params, previewLimit)).Msg("forwarding request")

	timeout := c.config.timeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return nil, c.fail(newUnreachableError(method, err))
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, c.fail(c.transportError(ctx, method, timeout, err))
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, c.fail(c.transportError(ctx, method, timeout, err))
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, c.fail(newHTTPStatusError(method, response.StatusCode, string(data)))
	}

	reply := &schema.Response{}
	if err = json.Unmarshal(data, reply); err != nil {
		return nil, c.fail(newMalformedResponseError(method, err))
	}
	if reply.HasError() {
		return nil, c.fail(newRemoteError(method, reply.ErrorMessage()))
	}
	if len(reply.Result) == 0 {
		return nil, c.fail(newMalformedResponseError(method, errMissingResult))
	}
	c.logger.Info().Str("method", method).Str("id", envelope.Id).
		Str("result", logx.Preview(reply.Result, previewLimit)).Msg("response received")
	return reply.Result, nil
}

// transportError classifies a failure of the HTTP exchange itself.
func (c *Client) transportError(ctx context.Context, method string, timeout time.Duration, err error) *Error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return newTimeoutError(method, timeout, err)
	case errors.Is(ctx.Err(), context.Canceled):
		return newUnreachableError(method, fmt.Errorf("request cancelled for method: %s: %w", method, err))
	}
	return newUnreachableError(method, err)
}

func (c *Client) fail(err *Error) *Error {
	c.logger.Warn().Str("method", err.Method).Str("kind", err.Kind.String()).
		Str("error", logx.Preview(err.Message, previewLimit)).Msg("forward failed")
	return err
}

// New creates a client for config.
func New(config Config, options ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ret := &Client{
		config: config,
		newID:  uuid.NewString,
		logger: logx.Log,
	}
	for _, opt := range options {
		opt(ret)
	}
	roundTripper, err := authtransport.New(config.APIKey, ret.baseTransport)
	if err != nil {
		return nil, err
	}
	ret.httpClient = &http.Client{Transport: roundTripper}
	return ret, nil
}
