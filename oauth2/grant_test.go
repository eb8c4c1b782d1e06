package oauth2_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-oauth-client/oauth2"
)

func TestGrantDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported grant type", func(t *testing.T) {
		cfg := codeGrantConfig("http://localhost:1/token")
		cfg.GrantType = "implicit"
		_, err := oauth2.NewClient(cfg).Exchange(ctx, oauth2.ExchangeParams{})
		var cfgErr *oauth2.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		require.Contains(t, cfgErr.Reason, "implicit")
	})

	t.Run("authorization_code requires a code", func(t *testing.T) {
		cfg := codeGrantConfig("http://localhost:1/token")
		_, err := oauth2.NewClient(cfg).Exchange(ctx, oauth2.ExchangeParams{})
		var cfgErr *oauth2.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("authorization_code requires a redirect URI", func(t *testing.T) {
		cfg := codeGrantConfig("http://localhost:1/token")
		cfg.RedirectURI = ""
		_, err := oauth2.NewClient(cfg).Exchange(ctx, oauth2.ExchangeParams{Code: "abc123"})
		var cfgErr *oauth2.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("registered grant is dispatched", func(t *testing.T) {
		oauth2.RegisterGrant("client_credentials", func(body url.Values, _ oauth2.Config, _ oauth2.ExchangeParams) error {
			return nil
		})

		server := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"token-1","token_type":"bearer"}`))
		})

		cfg := codeGrantConfig(server.URL)
		cfg.GrantType = "client_credentials"
		tok, err := oauth2.NewClient(cfg).Exchange(ctx, oauth2.ExchangeParams{})
		require.NoError(t, err)
		require.Equal(t, "token-1", tok.Token)
	})
}
