package bridge

import (
	"errors"
	"fmt"
	"time"

	"github.com/viant/motley/client"
)

const (
	envURL    = "MOTLEY_API_URL"
	envAPIKey = "MOTLEY_API_KEY"
)

type Options struct {
	URL      string        `short:"u" long:"url" env:"MOTLEY_API_URL" description:"remote JSON-RPC endpoint url"`
	APIKey   string        `short:"k" long:"api-key" env:"MOTLEY_API_KEY" description:"bearer credential for the remote endpoint"`
	Timeout  time.Duration `short:"t" long:"timeout" env:"MOTLEY_TIMEOUT" description:"per call timeout" default:"30s"`
	LogLevel string        `short:"l" long:"log-level" env:"LOG_LEVEL" description:"log level: trace, debug, info, warn, error, none" default:"info"`
	Name     string        `short:"n" long:"name" description:"server name reported on initialize" default:"motley"`
	Version  string        `long:"version-info" description:"server version reported on initialize" default:"0.1.0"`
}

// Validate fails when the endpoint or the credential is missing.
func (o *Options) Validate() error {
	if o.URL == "" {
		return requiredError(envURL)
	}
	if o.APIKey == "" {
		return requiredError(envAPIKey)
	}
	if o.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

// Config returns the immutable client configuration.
func (o *Options) Config() client.Config {
	return client.Config{URL: o.URL, APIKey: o.APIKey, Timeout: o.Timeout}
}

func (o *Options) String() string {
	apiKey := "No"
	if o.APIKey != "" {
		apiKey = "Yes (redacted)"
	}
	return fmt.Sprintf("url: %s, api key configured: %s, timeout: %s", o.URL, apiKey, o.Timeout)
}

func requiredError(name string) error {
	return fmt.Errorf("%s environment variable is required", name)
}
