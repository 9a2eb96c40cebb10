package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
)

type jsonCodec struct {
	disallowUnknownFields bool
}

func (c *jsonCodec) MediaType() string { return constants.MediaTypeJSON }

func (c *jsonCodec) ContentType() string { return withCharset(constants.MediaTypeJSON) }

func (c *jsonCodec) Matches(contentType string) bool {
	return mediaTypeOf(contentType) == constants.MediaTypeJSON
}

func (c *jsonCodec) Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c *jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if isBlank(data) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if c.disallowUnknownFields {
		dec.DisallowUnknownFields()
	}

	err := dec.Decode(v)
	if err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	var rest json.RawMessage

	err = dec.Decode(&rest)
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding json: %w", ErrTrailingData)
	}

	return nil
}
