package oauth2

import (
	"context"
	"net/http"
	"net/url"
)

// Refresh exchanges a refresh token for a new access token. The client
// credentials travel as body fields for this grant regardless of
// Config.AuthorizationHeader; providers uniformly accept that placement on
// refresh. A non-success response fails with a ProtocolError classified the
// same way as Exchange responses.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AccessToken, error) {
	if c.cfg.AccessTokenURI == "" {
		return nil, &ConfigurationError{Reason: "access token URI is required"}
	}
	if err := c.cfg.validateClientCredentials(); err != nil {
		return nil, err
	}
	if refreshToken == "" {
		return nil, &ConfigurationError{Reason: "refresh token is required"}
	}

	body := url.Values{}
	body.Set("grant_type", GrantRefreshToken)
	body.Set("client_id", c.cfg.ClientID)
	body.Set("client_secret", c.cfg.ClientSecret)
	body.Set("refresh_token", refreshToken)

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.log.Debug().Str("uri", c.cfg.AccessTokenURI).Str("grant_type", GrantRefreshToken).Msg("refreshing access token")
	return c.postTokenRequest(ctx, header, body)
}
