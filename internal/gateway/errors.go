package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is returned for any non-2xx backend response. Message prefers the
// JSON "detail" field of the body over the generic HTTP status text.
type APIError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// errorBodyLimit bounds how much of a failure body is read for the message.
const errorBodyLimit = 64 << 10

func newAPIError(op string, resp *http.Response) error {
	e := &APIError{Op: op, StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if err != nil {
		return e
	}
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		e.Detail = parsed.Detail
	}
	return e
}
