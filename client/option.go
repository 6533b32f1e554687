package client

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Option represents option
type Option func(c *Client)

// WithLogger sets the diagnostics logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTransport sets the base round tripper; the bearer header is always
// applied on top of it.
func WithTransport(roundTripper http.RoundTripper) Option {
	return func(c *Client) {
		c.baseTransport = roundTripper
	}
}

// WithIDGenerator overrides the correlation id generator.
func WithIDGenerator(newID func() string) Option {
	return func(c *Client) {
		c.newID = newID
	}
}
