package oauth2

import (
	"fmt"
	"net/url"
)

// Grant type names registered out of the box.
const (
	// GrantAuthorizationCode exchanges an authorization code for tokens.
	// Token request includes: code and redirect_uri (both required).
	GrantAuthorizationCode = "authorization_code"

	// GrantPassword exchanges resource-owner credentials for tokens.
	// Token request includes: username and password, forwarded as supplied;
	// missing values surface as missing fields server-side.
	GrantPassword = "password"

	// GrantRefreshToken exchanges a refresh token for new tokens. Used by
	// Refresh rather than dispatched through the grant registry.
	GrantRefreshToken = "refresh_token"
)

// GrantFunc extends a token request body with the fields of one grant type.
// It must not perform I/O; a ConfigurationError return aborts the exchange
// before any network call.
type GrantFunc func(body url.Values, cfg Config, params ExchangeParams) error

var grants = map[string]GrantFunc{
	GrantAuthorizationCode: authorizationCodeGrant,
	GrantPassword:          passwordGrant,
}

// RegisterGrant makes an additional grant type available to Exchange without
// touching the built-in strategies. Call it during initialization; the
// registry is not synchronized against in-flight exchanges.
func RegisterGrant(name string, fn GrantFunc) {
	grants[name] = fn
}

func grantFor(name string) (GrantFunc, error) {
	fn, ok := grants[name]
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unsupported grant type %q", name)}
	}
	return fn, nil
}

func authorizationCodeGrant(body url.Values, cfg Config, params ExchangeParams) error {
	if params.Code == "" {
		return &ConfigurationError{Reason: "authorization code is required"}
	}
	if cfg.RedirectURI == "" {
		return &ConfigurationError{Reason: "redirect URI is required"}
	}
	body.Set("code", params.Code)
	body.Set("redirect_uri", cfg.RedirectURI)
	return nil
}

func passwordGrant(body url.Values, _ Config, params ExchangeParams) error {
	body.Set("username", params.Username)
	body.Set("password", params.Password)
	return nil
}
