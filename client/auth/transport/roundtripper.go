package transport

import (
	"errors"
	"net/http"

	"golang.org/x/oauth2"
)

// TokenType is the authorization scheme used for the static credential.
const TokenType = "Bearer"

var errEmptyCredential = errors.New("bearer credential was empty")

// New returns a round tripper that sets the bearer header before delegating
// to base. A nil base uses http.DefaultTransport.
func New(credential string, base http.RoundTripper) (http.RoundTripper, error) {
	if credential == "" {
		return nil, errEmptyCredential
	}
	if base == nil {
		base = http.DefaultTransport
	}
	return &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: credential, TokenType: TokenType}),
		Base:   base,
	}, nil
}
