package bandwidth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors. Callers branch on them with errors.Is.
var (
	// ErrInvalidArgument is returned before any network call when a required
	// parameter is empty or malformed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrProtocol is returned when a response violates the API contract, for
	// example a creation call without a usable Location header.
	ErrProtocol = errors.New("protocol error")

	// ErrCancelled is returned when the caller's context ends before the
	// round trip completes. The context error is wrapped alongside it.
	ErrCancelled = errors.New("request cancelled")

	// ErrTimeout is returned when the client's own per-request timeout
	// expires while the caller's context is still live.
	ErrTimeout = errors.New("request timed out")

	// ErrClientClosed is returned by requests issued after Close.
	ErrClientClosed = errors.New("client is closed")

	// ErrInvalidEnumValue is returned when an enumerated field carries a value
	// outside its declared set, including integer encodings.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrConfigRequired is returned by constructors given a nil config.
	ErrConfigRequired = errors.New("config is required")
)

// HTTPError is returned for any non-2xx response. Body is kept verbatim.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if apiErr := e.APIError(); apiErr != nil && apiErr.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, apiErr.Error())
	}

	if len(e.Body) == 0 {
		return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("http %d: %s", e.StatusCode, string(e.Body))
}

// APIError parses the body as the API's JSON error document. It returns nil
// when the body is not one.
func (e *HTTPError) APIError() *APIError {
	if len(e.Body) == 0 {
		return nil
	}

	var apiErr APIError

	err := json.Unmarshal(e.Body, &apiErr)
	if err != nil || (apiErr.Code == "" && apiErr.Message == "" && apiErr.Category == "") {
		return nil
	}

	return &apiErr
}

// APIError is the error document the API returns alongside failure statuses.
type APIError struct {
	Category string `json:"category" yaml:"category"`
	Code     string `json:"code"     yaml:"code"`
	Message  string `json:"message"  yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}

	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// DecodeError is returned when a response had the expected content type but
// its body could not be parsed into the declared type.
type DecodeError struct {
	ContentType string
	Err         error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.ContentType, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an HTTPError.
func StatusCode(err error) int {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsDecodeError checks if the error is a DecodeError.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}
