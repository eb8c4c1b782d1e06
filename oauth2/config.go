// Package oauth2 implements the client side of the OAuth2 protocol (RFC 6749):
// building authorization redirect URIs, exchanging authorization codes or
// resource-owner credentials for access tokens, decorating outbound requests
// with tokens, and refreshing expired tokens. It tolerates the response
// conventions of legacy providers (form-encoded token bodies, the pre-final
// "draft-10" token type, non-standard error shapes).
package oauth2

// Config holds the endpoint configuration for a single OAuth2 provider.
// It is supplied by the caller and never mutated by this package; the fields
// each operation requires are validated before any network call is made.
type Config struct {
	// ClientID identifies the OAuth2 client.
	// Required: Yes (for all operations)
	// Example: "web-app-client"
	ClientID string

	// ClientSecret is the secret credential for the client.
	// Required: Yes for token exchange and refresh
	// Security: Never log or expose this value
	ClientSecret string

	// GrantType selects the flow used at the token endpoint.
	// Required: Yes for Exchange
	// Example: "authorization_code", "password"
	// Additional grant types can be added with RegisterGrant.
	GrantType string

	// AuthorizationURI is the provider's authorization endpoint.
	// Required: Yes for AuthRequest
	// Example: "https://provider.example.com/oauth/authorize"
	// Any query already present on the URI is preserved and merged with
	// the authorization parameters.
	AuthorizationURI string

	// AccessTokenURI is the provider's token endpoint.
	// Required: Yes for Exchange and Refresh
	// Example: "https://provider.example.com/oauth/token"
	AccessTokenURI string

	// RedirectURI is where the authorization response is sent.
	// Required: Yes for the authorization_code grant
	// Example: "https://myapp.com/callback"
	RedirectURI string

	// Scope lists the requested permissions, joined with single spaces on
	// the wire.
	// Example: []string{"profile", "email"}
	Scope []string

	// AccessQueryParam names a query parameter to carry the access token on
	// decorated requests instead of an Authorization header.
	// Required: No (header placement is used when empty)
	// Example: "oauth_token"
	AccessQueryParam string

	// AuthorizationHeader selects how client credentials are sent to the
	// token endpoint: true uses an Authorization Basic header, false sends
	// client_id and client_secret as body fields. The two are mutually
	// exclusive; exactly one applies per request.
	AuthorizationHeader bool

	// AccessType is passed through to the authorization endpoint when set.
	// Example: "offline" (providers that issue refresh tokens on request)
	AccessType string

	// Prompt is passed through to the authorization endpoint when set,
	// joined with single spaces.
	// Example: []string{"consent", "select_account"}
	Prompt []string

	// IncludeGrantedScopes adds include_granted_scopes=true to the
	// authorization request (incremental authorization).
	IncludeGrantedScopes bool

	// LoginHint pre-fills the provider's login page when set.
	// Example: "user@example.com"
	LoginHint string
}

func (c Config) validateAuthorization() error {
	if c.AuthorizationURI == "" {
		return &ConfigurationError{Reason: "authorization URI is required"}
	}
	if c.ClientID == "" {
		return &ConfigurationError{Reason: "client id is required"}
	}
	return nil
}

func (c Config) validateClientCredentials() error {
	if c.ClientID == "" {
		return &ConfigurationError{Reason: "client id is required"}
	}
	if c.ClientSecret == "" {
		return &ConfigurationError{Reason: "client secret is required"}
	}
	return nil
}
