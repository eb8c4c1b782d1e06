// Package discovery resolves OAuth2 endpoint configuration from an OpenID
// Connect issuer's published metadata, so callers only configure the issuer
// and their client credentials.
package discovery

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	xoauth2 "golang.org/x/oauth2"

	"github.com/jrsteele09/go-oauth-client/oauth2"
)

// Resolve fetches the issuer's discovery document and fills the authorization
// and token endpoint URIs of base. Fields the caller already set are
// preserved.
func Resolve(ctx context.Context, issuer string, base oauth2.Config) (oauth2.Config, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return base, errors.Wrap(err, "[Resolve] oidc discovery")
	}
	return FromEndpoint(provider.Endpoint(), base), nil
}

// FromEndpoint copies a golang.org/x/oauth2 Endpoint into base, for callers
// that already hold provider metadata in that form. Fields the caller set on
// base are preserved.
func FromEndpoint(endpoint xoauth2.Endpoint, base oauth2.Config) oauth2.Config {
	if base.AuthorizationURI == "" {
		base.AuthorizationURI = endpoint.AuthURL
	}
	if base.AccessTokenURI == "" {
		base.AccessTokenURI = endpoint.TokenURL
	}
	return base
}
