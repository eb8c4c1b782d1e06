package oauth2

import (
	"encoding/base64"
	"net/http"
	"net/url"
)

// applyClientAuth attaches the client credentials to a token request, either
// as an Authorization Basic header or as client_id/client_secret body fields
// depending on cfg.AuthorizationHeader. Exactly one of the two applies.
func applyClientAuth(header http.Header, body url.Values, cfg Config) error {
	if err := cfg.validateClientCredentials(); err != nil {
		return err
	}
	if cfg.AuthorizationHeader {
		credentials := base64.StdEncoding.EncodeToString([]byte(cfg.ClientID + ":" + cfg.ClientSecret))
		header.Set("Authorization", "Basic "+credentials)
		return nil
	}
	body.Set("client_id", cfg.ClientID)
	body.Set("client_secret", cfg.ClientSecret)
	return nil
}
