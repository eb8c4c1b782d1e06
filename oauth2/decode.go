package oauth2

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// decodeTokenResponse interprets a token endpoint response body according to
// its content type. JSON (and the text/javascript alias some providers use)
// decodes to the natural JSON value types; anything else is treated as a
// form-urlencoded body with string values throughout.
func decodeTokenResponse(contentType string, body []byte) (map[string]any, error) {
	if strings.HasPrefix(contentType, "application/json") || strings.HasPrefix(contentType, "text/javascript") {
		fields := map[string]any{}
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, errors.Wrap(err, "[decodeTokenResponse] json token response")
		}
		return fields, nil
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, errors.Wrap(err, "[decodeTokenResponse] form-urlencoded token response")
	}
	fields := make(map[string]any, len(values))
	for key := range values {
		fields[key] = values.Get(key)
	}
	return fields, nil
}

// responseError classifies a decoded token response. Providers report errors
// in two shapes: the RFC 6749 plain-string error with error_description, and
// a nested object carrying type and message (a Facebook convention). A nil
// return means the response is a usable token.
func responseError(fields map[string]any, status int) *ProtocolError {
	switch e := fields["error"].(type) {
	case string:
		description, _ := fields["error_description"].(string)
		return &ProtocolError{Code: e, Description: description}
	case map[string]any:
		code, _ := e["type"].(string)
		message, _ := e["message"].(string)
		return &ProtocolError{Code: code, Description: message}
	}
	if status != http.StatusOK {
		return genericTokenError()
	}
	return nil
}

func genericTokenError() *ProtocolError {
	return &ProtocolError{Code: "unknown", Description: "error requesting access token"}
}
