package http

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"

	"github.com/dannycabrera/bandwidth-go/internal/codec"
	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// CheckStatus returns an *bandwidth.HTTPError for any non-2xx response.
func CheckStatus(resp *Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return &bandwidth.HTTPError{StatusCode: resp.StatusCode, Body: resp.Body}
}

// Decode unmarshals the body into out. It reports false with a nil error when
// the body is empty or the content type does not belong to c.
func Decode(resp *Response, c codec.Codec, out interface{}) (bool, error) {
	err := CheckStatus(resp)
	if err != nil {
		return false, err
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 || !c.Matches(resp.ContentType) {
		return false, nil
	}

	err = c.Unmarshal(resp.Body, out)
	if err != nil {
		return false, &bandwidth.DecodeError{ContentType: resp.ContentType, Err: err}
	}

	return true, nil
}

// ExtractResourceID returns the last path segment of location when it
// directly follows /<collection>/.
func ExtractResourceID(location, collection string) (string, bool) {
	if location == "" || collection == "" {
		return "", false
	}

	parsed, err := url.Parse(location)
	if err != nil {
		return "", false
	}

	pattern, err := regexp.Compile("/" + regexp.QuoteMeta(collection) + "/([^/]+)$")
	if err != nil {
		return "", false
	}

	match := pattern.FindStringSubmatch(parsed.Path)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// CreatedID extracts the id of a created resource from the Location header.
func CreatedID(resp *Response, collection string) (string, error) {
	location := resp.Headers.Get(constants.HeaderLocation)
	if location == "" {
		return "", fmt.Errorf("%w: missing id in response: no %s header", bandwidth.ErrProtocol, constants.HeaderLocation)
	}

	id, ok := ExtractResourceID(location, collection)
	if !ok {
		return "", fmt.Errorf("%w: missing id in response: %s %q does not name a %s resource",
			bandwidth.ErrProtocol, constants.HeaderLocation, location, collection)
	}

	return id, nil
}
