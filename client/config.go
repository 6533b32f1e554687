package client

import (
	"errors"
	"time"
)

// DefaultTimeout bounds a single forwarded call.
const DefaultTimeout = 30 * time.Second

// Config is the immutable connection setting shared by all calls.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Validate checks that the endpoint and credential are present.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("remote endpoint URL was empty")
	}
	if c.APIKey == "" {
		return errors.New("bearer credential was empty")
	}
	return nil
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
