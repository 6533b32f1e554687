// Package transport implements the http.RoundTripper that authenticates every
// outbound call to the remote endpoint with a static bearer credential.
//
// The credential is served through an oauth2.StaticTokenSource, so the header
// is written as `Authorization: Bearer <credential>` by oauth2.Transport.
package transport
