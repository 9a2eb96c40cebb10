package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// QueryParam is a single key/value pair of a query string.
type QueryParam struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters. Encode keeps insertion order.
type Query []QueryParam

// Add appends a parameter.
func (q *Query) Add(key, value string) {
	*q = append(*q, QueryParam{Key: key, Value: value})
}

// AddInt appends an integer parameter when value is non-zero.
func (q *Query) AddInt(key string, value int) {
	if value == 0 {
		return
	}

	q.Add(key, strconv.Itoa(value))
}

// AddString appends a parameter when value is non-empty.
func (q *Query) AddString(key, value string) {
	if value == "" {
		return
	}

	q.Add(key, value)
}

// Encode renders k1=v1&k2=v2 with keys and values data-escaped.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, param := range q {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(EscapeDataString(param.Key))
		builder.WriteByte('=')
		builder.WriteString(EscapeDataString(param.Value))
	}

	return builder.String()
}

// ParseQuery parses an encoded query string, with or without the leading '?'.
func ParseQuery(raw string) (Query, error) {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, "&")
	query := make(Query, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(part, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: query key %q: %w", bandwidth.ErrInvalidArgument, rawKey, err)
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: query value %q: %w", bandwidth.ErrInvalidArgument, rawValue, err)
		}

		query.Add(key, value)
	}

	return query, nil
}

// EscapeDataString percent-encodes s for use as a URI component.
// Spaces become %20, never '+'.
func EscapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// IsDotSegment reports whether id is "." or "..", which servers resolve
// against the collection path instead of treating as an id.
func IsDotSegment(id string) bool {
	return id == "." || id == ".."
}

// BuildPath composes <accountPath>/<resourcePath>[/<resourceID>][?query].
func BuildPath(accountPath, resourcePath, resourceID string, query Query) (string, error) {
	resourcePath = strings.Trim(resourcePath, "/")
	if resourcePath == "" {
		return "", fmt.Errorf("%w: resource path is required", bandwidth.ErrInvalidArgument)
	}

	if strings.Contains(resourceID, "/") {
		return "", fmt.Errorf("%w: resource id %q must not contain '/'", bandwidth.ErrInvalidArgument, resourceID)
	}

	if IsDotSegment(resourceID) {
		return "", fmt.Errorf("%w: resource id %q is a relative path segment", bandwidth.ErrInvalidArgument, resourceID)
	}

	var builder strings.Builder

	accountPath = strings.TrimRight(accountPath, "/")
	if accountPath != "" && !strings.HasPrefix(accountPath, "/") {
		builder.WriteByte('/')
	}

	builder.WriteString(accountPath)
	builder.WriteByte('/')
	builder.WriteString(resourcePath)

	if resourceID != "" {
		builder.WriteByte('/')
		builder.WriteString(EscapeDataString(resourceID))
	}

	if encoded := query.Encode(); encoded != "" {
		builder.WriteByte('?')
		builder.WriteString(encoded)
	}

	return builder.String(), nil
}
