package oauth2

// LegacyTokenType is the token type assumed when a provider omits token_type
// from its response. Providers built against pre-final OAuth2 drafts
// ("draft 10") do this; the value is a compatibility shim for them, not an
// RFC 6749 default.
const LegacyTokenType = "draft-10"

// BearerTokenType is the standard RFC 6750 token type.
const BearerTokenType = "bearer"

// AccessToken is the result of a successful token exchange or refresh. The
// caller owns the value; this package performs no expiry tracking or storage.
type AccessToken struct {
	// Token is the access token string used to access protected resources.
	// Example: "SlAV32hkKG"
	Token string

	// Type indicates how the token is carried on requests.
	// Example: "bearer"
	// Defaults to LegacyTokenType when the provider omits token_type.
	Type string

	// RefreshToken is the opaque token used to obtain new access tokens,
	// when the provider issued one.
	// Example: "tGzv3JOkF0XG5Qx2TlKWIA"
	RefreshToken string

	// QueryParam, when set, names the query parameter Attach uses to carry
	// the token instead of an Authorization header. Copied from
	// Config.AccessQueryParam.
	QueryParam string

	// Params holds every additional field the provider returned alongside
	// the token (expires_in, scope, provider extensions). Values are
	// strings for form-encoded responses and JSON value types otherwise.
	Params map[string]any
}

func newAccessToken(fields map[string]any, cfg Config) *AccessToken {
	tok := &AccessToken{
		Type:       LegacyTokenType,
		QueryParam: cfg.AccessQueryParam,
		Params:     make(map[string]any, len(fields)),
	}
	for key, value := range fields {
		switch key {
		case "access_token":
			tok.Token, _ = value.(string)
			continue
		case "token_type":
			if s, ok := value.(string); ok && s != "" {
				tok.Type = s
			}
			continue
		case "refresh_token":
			tok.RefreshToken, _ = value.(string)
		}
		tok.Params[key] = value
	}
	return tok
}
