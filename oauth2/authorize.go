package oauth2

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AuthRequest is the authorization redirect handed to the user agent at the
// start of the authorization_code flow. It is consumed once by the caller:
// redirect the user to URI, keep State to validate the callback with.
type AuthRequest struct {
	// URI is the full authorization endpoint URI including the query.
	URI string

	// Scope echoes the scopes the authorization was requested with.
	Scope []string

	// State echoes the opaque anti-CSRF value sent with the request.
	State string
}

// NewState returns an opaque value suitable for the state parameter.
func NewState() string {
	return uuid.New().String()
}

// NewAuthRequest builds the authorization redirect for cfg. The state value
// is optional but strongly recommended; pass NewState() unless the caller
// manages its own. Parameters are merged onto any query already present on
// the authorization URI.
func NewAuthRequest(cfg Config, state string) (*AuthRequest, error) {
	if err := cfg.validateAuthorization(); err != nil {
		return nil, err
	}

	u, err := url.Parse(cfg.AuthorizationURI)
	if err != nil {
		return nil, errors.Wrap(err, "[NewAuthRequest] parse authorization URI")
	}

	q := u.Query()
	q.Set("client_id", cfg.ClientID)
	q.Set("response_type", "code")
	if cfg.RedirectURI != "" {
		q.Set("redirect_uri", cfg.RedirectURI)
	}
	if state != "" {
		q.Set("state", state)
	}
	if cfg.AccessType != "" {
		q.Set("access_type", cfg.AccessType)
	}
	if len(cfg.Scope) > 0 {
		q.Set("scope", strings.Join(cfg.Scope, " "))
	}
	if len(cfg.Prompt) > 0 {
		q.Set("prompt", strings.Join(cfg.Prompt, " "))
	}
	if cfg.IncludeGrantedScopes {
		q.Set("include_granted_scopes", "true")
	}
	if cfg.LoginHint != "" {
		q.Set("login_hint", cfg.LoginHint)
	}
	u.RawQuery = q.Encode()

	return &AuthRequest{
		URI:   u.String(),
		Scope: cfg.Scope,
		State: state,
	}, nil
}
