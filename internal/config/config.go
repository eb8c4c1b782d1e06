package config

import "github.com/jrsteele09/go-oauth-client/oauth2"

// Settings exposes the environment-backed configuration for the demo client.
type Settings interface {
	GetAppName() string
	GetIssuer() string
	GetClientID() string
	GetClientSecret() string
	GetGrantType() string
	GetAuthorizationURI() string
	GetAccessTokenURI() string
	GetRedirectURI() string
	GetScope() []string
	GetAccessQueryParam() string
	GetAuthorizationHeader() bool
}

type mainConfig struct {
	EnvVars
}

func New() Settings {
	return mainConfig{}
}

// ClientConfig maps the settings onto an endpoint configuration. When an
// issuer is configured the endpoint URIs may be left empty here and filled by
// discovery.
func ClientConfig(s Settings) oauth2.Config {
	return oauth2.Config{
		ClientID:            s.GetClientID(),
		ClientSecret:        s.GetClientSecret(),
		GrantType:           s.GetGrantType(),
		AuthorizationURI:    s.GetAuthorizationURI(),
		AccessTokenURI:      s.GetAccessTokenURI(),
		RedirectURI:         s.GetRedirectURI(),
		Scope:               s.GetScope(),
		AccessQueryParam:    s.GetAccessQueryParam(),
		AuthorizationHeader: s.GetAuthorizationHeader(),
	}
}
