package oauth2

import (
	"context"
	"net/http"
)

type tokenContextKey struct{}

// WithToken returns a context carrying tok for a single request made through
// a Transport. It overrides the Transport's static Token for that request.
func WithToken(ctx context.Context, tok *AccessToken) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, tok)
}

// TokenFromContext returns the token attached with WithToken, if any.
func TokenFromContext(ctx context.Context) (*AccessToken, bool) {
	tok, ok := ctx.Value(tokenContextKey{}).(*AccessToken)
	return tok, ok && tok != nil
}

// Transport is an http.RoundTripper that transparently attaches an access
// token to every request it forwards. The token comes from the request
// context (WithToken) or, absent one, from the Transport's Token field; the
// context token is stripped before the request reaches Base.
//
// Transport is safe for concurrent use if Base is.
type Transport struct {
	// Base forwards the decorated request. http.DefaultTransport when nil.
	Base http.RoundTripper

	// Token is attached to requests that carry no context token.
	Token *AccessToken

	// Strict fails requests that could not be decorated instead of
	// forwarding them unauthenticated. The failure happens before any
	// network I/O.
	Strict bool
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok := t.Token
	if ctxTok, ok := TokenFromContext(req.Context()); ok {
		tok = ctxTok
	}

	// RoundTrippers must not modify the caller's request; the clone also
	// strips the context token before forwarding.
	out := req.Clone(context.WithValue(req.Context(), tokenContextKey{}, nil))

	if tok == nil {
		if t.Strict {
			return nil, &ProtocolError{Code: "unknown", Description: "missing oauth2 params"}
		}
		return t.base().RoundTrip(out)
	}

	attached, err := tok.Attach(out)
	if t.Strict {
		if err != nil {
			return nil, err
		}
		if !attached {
			return nil, &ProtocolError{Code: "unknown", Description: "missing oauth2 params"}
		}
	}
	return t.base().RoundTrip(out)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
