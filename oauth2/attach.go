package oauth2

import (
	"net/http"
	"strings"
)

// An attachFunc decorates req with tok and reports whether a credential was
// attached.
type attachFunc func(tok *AccessToken, req *http.Request) bool

var tokenTypes = map[string]attachFunc{
	BearerTokenType: attachWithScheme("Bearer"),
	LegacyTokenType: attachWithScheme("OAuth"),
}

// RegisterTokenType makes an additional token type attachable. The name is
// matched case-insensitively against AccessToken.Type. Call it during
// initialization; the registry is not synchronized against in-flight
// requests.
func RegisterTokenType(name string, fn func(tok *AccessToken, req *http.Request) bool) {
	tokenTypes[strings.ToLower(name)] = fn
}

// attachWithScheme carries the token either as the configured query
// parameter or, absent one, as an Authorization header with the given
// scheme. Bearer tokens use "Bearer"; legacy draft-10 providers expect
// "OAuth".
func attachWithScheme(scheme string) attachFunc {
	return func(tok *AccessToken, req *http.Request) bool {
		if tok.Token == "" {
			return false
		}
		if tok.QueryParam != "" {
			q := req.URL.Query()
			q.Set(tok.QueryParam, tok.Token)
			req.URL.RawQuery = q.Encode()
			return true
		}
		req.Header.Set("Authorization", scheme+" "+tok.Token)
		return true
	}
}

// Attach decorates req with the token and reports whether a credential was
// attached. A token type with no registered attacher returns an
// UnknownTokenTypeError and leaves req unmodified; callers that tolerate
// undecorated requests (see Transport without Strict) may ignore it.
func (t *AccessToken) Attach(req *http.Request) (bool, error) {
	fn, ok := tokenTypes[strings.ToLower(t.Type)]
	if !ok {
		return false, &UnknownTokenTypeError{Type: t.Type}
	}
	return fn(t, req), nil
}
