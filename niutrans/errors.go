package niutrans

import (
	"fmt"
	"strings"
)

// HTTPError reports a non-2xx status from the translation endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 256 {
		body = body[:256]
	}
	if body == "" {
		return fmt.Sprintf("translation endpoint status %d", e.StatusCode)
	}
	return fmt.Sprintf("translation endpoint status %d: %s", e.StatusCode, body)
}

// ParseError reports a response body that does not match the expected schema.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse translation response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse translation response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// APIError is a business-level failure reported inside a well-formed
// response via a non-empty errorCode.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error code %s: %s", e.Code, e.Message)
}

// ConfigError reports a missing required credential or parameter.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
