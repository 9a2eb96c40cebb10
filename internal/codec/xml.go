package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
)

type xmlCodec struct {
	declaration bool
}

func (c *xmlCodec) MediaType() string { return constants.MediaTypeXML }

func (c *xmlCodec) ContentType() string { return withCharset(constants.MediaTypeXML) }

// Matches accepts both application/xml and text/xml.
func (c *xmlCodec) Matches(contentType string) bool {
	switch mediaTypeOf(contentType) {
	case constants.MediaTypeXML, constants.MediaTypeTextXML:
		return true
	default:
		return false
	}
}

func (c *xmlCodec) Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}

	var buf bytes.Buffer

	if c.declaration {
		buf.WriteString(xml.Header)
	}

	err := xml.NewEncoder(&buf).Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encoding xml: %w", err)
	}

	return buf.Bytes(), nil
}

func (c *xmlCodec) Unmarshal(data []byte, v interface{}) error {
	if isBlank(data) {
		return nil
	}

	dec := xml.NewDecoder(bytes.NewReader(data))

	err := dec.Decode(v)
	if err != nil {
		return fmt.Errorf("decoding xml: %w", err)
	}

	return rejectTrailing(dec)
}

// rejectTrailing allows only whitespace, comments and processing
// instructions after the root element.
func rejectTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("decoding xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("decoding xml: %w", ErrTrailingData)
			}
		case xml.Comment, xml.ProcInst:
		default:
			return fmt.Errorf("decoding xml: %w", ErrTrailingData)
		}
	}
}
