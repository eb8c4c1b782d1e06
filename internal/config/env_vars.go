package config

import (
	"os"
	"strings"
)

const (
	appNameVar             = "APP_NAME"
	issuerVar              = "OAUTH_ISSUER"
	clientIDVar            = "OAUTH_CLIENT_ID"
	clientSecretVar        = "OAUTH_CLIENT_SECRET"
	grantTypeVar           = "OAUTH_GRANT_TYPE"
	authorizationURIVar    = "OAUTH_AUTHORIZATION_URI"
	accessTokenURIVar      = "OAUTH_ACCESS_TOKEN_URI"
	redirectURIVar         = "OAUTH_REDIRECT_URI"
	scopeVar               = "OAUTH_SCOPE"
	accessQueryParamVar    = "OAUTH_ACCESS_QUERY_PARAM"
	authorizationHeaderVar = "OAUTH_AUTHORIZATION_HEADER"
)

type EnvVars struct{}

var _ Settings = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Go OAuth Client")
}

func (EnvVars) GetIssuer() string {
	return GetEnv(issuerVar, "")
}

func (EnvVars) GetClientID() string {
	return GetEnv(clientIDVar, "")
}

func (EnvVars) GetClientSecret() string {
	return GetEnv(clientSecretVar, "")
}

func (EnvVars) GetGrantType() string {
	return GetEnv(grantTypeVar, "authorization_code")
}

func (EnvVars) GetAuthorizationURI() string {
	return GetEnv(authorizationURIVar, "")
}

func (EnvVars) GetAccessTokenURI() string {
	return GetEnv(accessTokenURIVar, "")
}

func (EnvVars) GetRedirectURI() string {
	return GetEnv(redirectURIVar, "")
}

// GetScope reads a space-separated scope list, matching the wire format.
func (EnvVars) GetScope() []string {
	scope := GetEnv(scopeVar, "")
	if scope == "" {
		return nil
	}
	return strings.Fields(scope)
}

func (EnvVars) GetAccessQueryParam() string {
	return GetEnv(accessQueryParamVar, "")
}

func (EnvVars) GetAuthorizationHeader() bool {
	return GetEnv(authorizationHeaderVar, "false") == "true"
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
