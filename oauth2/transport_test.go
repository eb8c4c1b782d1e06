package oauth2_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-oauth-client/oauth2"
)

// recordingTransport captures the forwarded request instead of performing
// network I/O.
type recordingTransport struct {
	req *http.Request
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.req = req
	return &http.Response{StatusCode: http.StatusOK, Request: req, Body: http.NoBody}, nil
}

func TestTransport(t *testing.T) {
	bearer := &oauth2.AccessToken{Token: "token-1", Type: "bearer"}

	t.Run("attaches the static token", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base, Token: bearer}

		req := newRequest(t)
		_, err := transport.RoundTrip(req)
		require.NoError(t, err)
		require.Equal(t, "Bearer token-1", base.req.Header.Get("Authorization"))
	})

	t.Run("does not modify the caller's request", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base, Token: bearer}

		req := newRequest(t)
		_, err := transport.RoundTrip(req)
		require.NoError(t, err)
		require.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("context token overrides the static token", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base, Token: bearer}

		perRequest := &oauth2.AccessToken{Token: "token-2", Type: "bearer"}
		req := newRequest(t)
		req = req.WithContext(oauth2.WithToken(req.Context(), perRequest))

		_, err := transport.RoundTrip(req)
		require.NoError(t, err)
		require.Equal(t, "Bearer token-2", base.req.Header.Get("Authorization"))
	})

	t.Run("context token is stripped before forwarding", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base, Token: nil}

		req := newRequest(t)
		req = req.WithContext(oauth2.WithToken(req.Context(), bearer))

		_, err := transport.RoundTrip(req)
		require.NoError(t, err)
		_, ok := oauth2.TokenFromContext(base.req.Context())
		require.False(t, ok)
	})

	t.Run("missing token forwards unauthenticated by default", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base}

		_, err := transport.RoundTrip(newRequest(t))
		require.NoError(t, err)
		require.Empty(t, base.req.Header.Get("Authorization"))
	})

	t.Run("strict mode fails on a missing token", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base, Strict: true}

		_, err := transport.RoundTrip(newRequest(t))
		var protocolErr *oauth2.ProtocolError
		require.ErrorAs(t, err, &protocolErr)
		require.Equal(t, "missing oauth2 params", protocolErr.Description)
		require.Nil(t, base.req)
	})

	t.Run("strict mode fails on an empty token", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base, Token: &oauth2.AccessToken{Type: "bearer"}, Strict: true}

		_, err := transport.RoundTrip(newRequest(t))
		var protocolErr *oauth2.ProtocolError
		require.ErrorAs(t, err, &protocolErr)
		require.Nil(t, base.req)
	})

	t.Run("strict mode surfaces unknown token types", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base, Token: &oauth2.AccessToken{Token: "token-1", Type: "mac"}, Strict: true}

		_, err := transport.RoundTrip(newRequest(t))
		var unknownErr *oauth2.UnknownTokenTypeError
		require.ErrorAs(t, err, &unknownErr)
		require.Nil(t, base.req)
	})

	t.Run("lenient mode forwards undecorated on unknown token types", func(t *testing.T) {
		base := &recordingTransport{}
		transport := &oauth2.Transport{Base: base, Token: &oauth2.AccessToken{Token: "token-1", Type: "mac"}}

		_, err := transport.RoundTrip(newRequest(t))
		require.NoError(t, err)
		require.Empty(t, base.req.Header.Get("Authorization"))
	})
}
