package oauth2

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Token endpoint timeouts. They are part of the protocol engine's contract
// and are not configurable; callers wanting different transport behavior
// must wrap the package's entry points.
const (
	connectTimeout = 10 * time.Second
	readTimeout    = 10 * time.Second
)

// httpClient is shared by every Client. It reports non-2xx statuses as
// ordinary responses; status handling happens in postTokenRequest.
var httpClient = &http.Client{
	Transport: &http.Transport{
		DialContext:           (&net.Dialer{Timeout: connectTimeout}).DialContext,
		ResponseHeaderTimeout: readTimeout,
	},
}

// ExchangeParams carries the values returned on the redirect callback, or
// supplied directly by the caller for grants without a redirect leg.
type ExchangeParams struct {
	// Code is the authorization code from the callback (authorization_code
	// grant).
	Code string

	// Username and Password are the resource-owner credentials (password
	// grant). They are forwarded to the token endpoint, never stored.
	Username string
	Password string

	// State echoes the state parameter from the callback.
	State string

	// Error and ErrorDescription are set when the authorization server
	// redirected back with a denial instead of a code.
	Error            string
	ErrorDescription string
}

// Client performs OAuth2 token acquisition against a single endpoint
// configuration. Every operation is a pure computation plus at most one
// synchronous round trip; a Client holds no mutable state and is safe for
// concurrent use.
type Client struct {
	cfg Config
	log zerolog.Logger
}

// ClientOption modifies a Client during construction.
type ClientOption func(*Client)

// WithLogger sets the logger used for exchange breadcrumbs. The default
// discards everything.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = logger
	}
}

// NewClient returns a Client for cfg. Field validation happens per operation,
// so a Config missing redirect-flow fields can still be used for the grants
// that do not need them.
func NewClient(cfg Config, options ...ClientOption) *Client {
	client := &Client{cfg: cfg, log: zerolog.Nop()}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// Config returns the endpoint configuration the Client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// AuthRequest builds the authorization redirect for the Client's
// configuration. See NewAuthRequest.
func (c *Client) AuthRequest(state string) (*AuthRequest, error) {
	return NewAuthRequest(c.cfg, state)
}

// Exchange swaps the callback parameters for an access token using the
// configured grant type. An optional expected AuthRequest enables the
// anti-CSRF state check: when its State differs from params.State the
// exchange fails with a StateMismatchError before any network call. A denial
// carried in params (the error field set) likewise fails without network I/O.
func (c *Client) Exchange(ctx context.Context, params ExchangeParams, expected ...*AuthRequest) (*AccessToken, error) {
	if params.Error != "" {
		return nil, &ProtocolError{Code: params.Error, Description: params.ErrorDescription}
	}
	if len(expected) > 0 && expected[0] != nil && expected[0].State != "" && expected[0].State != params.State {
		return nil, &StateMismatchError{Expected: expected[0].State, Actual: params.State}
	}
	return c.requestToken(ctx, params)
}

func (c *Client) requestToken(ctx context.Context, params ExchangeParams) (*AccessToken, error) {
	if c.cfg.AccessTokenURI == "" {
		return nil, &ConfigurationError{Reason: "access token URI is required"}
	}
	grant, err := grantFor(c.cfg.GrantType)
	if err != nil {
		return nil, err
	}

	body := url.Values{}
	body.Set("grant_type", c.cfg.GrantType)
	if err := grant(body, c.cfg, params); err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := applyClientAuth(header, body, c.cfg); err != nil {
		return nil, err
	}

	c.log.Debug().Str("uri", c.cfg.AccessTokenURI).Str("grant_type", c.cfg.GrantType).Msg("requesting access token")
	return c.postTokenRequest(ctx, header, body)
}

// postTokenRequest issues the token endpoint POST and interprets the
// response. The transport never raises on non-2xx statuses; classification
// happens here on the decoded body and explicit status inspection.
func (c *Client) postTokenRequest(ctx context.Context, header http.Header, body url.Values) (*AccessToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AccessTokenURI, strings.NewReader(body.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "[postTokenRequest] build token request")
	}
	for name, values := range header {
		req.Header[name] = values
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "[postTokenRequest] post token request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "[postTokenRequest] read token response")
	}

	fields, err := decodeTokenResponse(resp.Header.Get("Content-Type"), raw)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, genericTokenError()
		}
		return nil, err
	}
	if perr := responseError(fields, resp.StatusCode); perr != nil {
		return nil, perr
	}
	return newAccessToken(fields, c.cfg), nil
}
