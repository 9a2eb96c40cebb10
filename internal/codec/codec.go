// Package codec serializes request and response bodies as JSON or XML.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
)

// ErrUnknownEncoding is returned for an Encoding outside the declared set.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrTrailingData is returned when a body holds more than one document.
var ErrTrailingData = errors.New("trailing data")

// Encoding selects the wire format of a call site.
type Encoding int

const (
	JSON Encoding = iota
	XML
)

// String returns the lower-case encoding name.
func (e Encoding) String() string {
	switch e {
	case JSON:
		return "json"
	case XML:
		return "xml"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Settings are fixed when a Set is built.
type Settings struct {
	DisallowUnknownFields bool
	XMLDeclaration        bool
}

// Codec encodes and decodes one wire format.
type Codec interface {
	// MediaType is the bare media type, without parameters.
	MediaType() string
	// ContentType is the value sent in the Content-Type request header.
	ContentType() string
	// Matches reports whether a response Content-Type header is acceptable for decoding.
	Matches(contentType string) bool
	// Marshal encodes v. A nil v encodes to no bytes.
	Marshal(v interface{}) ([]byte, error)
	// Unmarshal decodes data into v. An empty or blank body leaves v untouched.
	Unmarshal(data []byte, v interface{}) error
}

// Set holds one codec per encoding, all sharing the same Settings.
type Set struct {
	settings Settings
	json     *jsonCodec
	xml      *xmlCodec
}

// NewSet builds the codecs for the given settings.
func NewSet(settings Settings) *Set {
	return &Set{
		settings: settings,
		json:     &jsonCodec{disallowUnknownFields: settings.DisallowUnknownFields},
		xml:      &xmlCodec{declaration: settings.XMLDeclaration},
	}
}

// Settings returns a copy of the settings the set was built with.
func (s *Set) Settings() Settings {
	return s.settings
}

// For returns the codec for enc.
func (s *Set) For(enc Encoding) (Codec, error) {
	switch enc {
	case JSON:
		return s.json, nil
	case XML:
		return s.xml, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, enc)
	}
}

func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}

func withCharset(mediaType string) string {
	return mediaType + "; " + constants.CharsetUTF8
}

// mediaTypeOf strips parameters from a Content-Type header value.
func mediaTypeOf(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}

	return mediaType
}
