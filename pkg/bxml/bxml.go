// Package bxml builds call-control XML documents returned to the voice
// platform from application callbacks.
package bxml

import (
	"encoding/xml"
	"fmt"

	"github.com/dannycabrera/bandwidth-go/internal/codec"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// DefaultMaxDuration is the recording limit, in seconds, applied when Record.MaxDuration is zero.
const DefaultMaxDuration = 300

// Verb is one instruction of a Response.
type Verb interface {
	verbName() string
}

// Response is the root element of a call-control document.
type Response struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []Verb
}

// NewResponse creates a response holding verbs in order.
func NewResponse(verbs ...Verb) *Response {
	return &Response{Verbs: verbs}
}

// Add appends verbs and returns r.
func (r *Response) Add(verbs ...Verb) *Response {
	r.Verbs = append(r.Verbs, verbs...)

	return r
}

// ToXML renders the document with an XML declaration.
func (r *Response) ToXML() (string, error) {
	xmlCodec, err := codec.NewSet(codec.Settings{XMLDeclaration: true}).For(codec.XML)
	if err != nil {
		return "", err
	}

	data, err := xmlCodec.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("rendering response: %w", err)
	}

	return string(data), nil
}

// Record records the caller.
type Record struct {
	RequestURL            string                        `xml:"requestUrl,attr"`
	RequestURLTimeout     int                           `xml:"requestUrlTimeout,attr"`
	TerminatingDigits     string                        `xml:"terminatingDigits,attr"`
	MaxDuration           int                           `xml:"maxDuration,attr"`
	Transcribe            bool                          `xml:"transcribe,attr"`
	TranscribeCallbackURL string                        `xml:"transcribeCallbackUrl,attr"`
	RecordingFileFormat   bandwidth.RecordingFileFormat `xml:"recordingFileFormat,attr"`
}

// NewRecord creates a Record verb with the default max duration.
func NewRecord(requestURL string) *Record {
	return &Record{RequestURL: requestURL, MaxDuration: DefaultMaxDuration}
}

func (*Record) verbName() string { return "Record" }

// MarshalXML omits attributes holding their defaults. maxDuration is left
// out when it is zero or DefaultMaxDuration; transcribe is always written.
func (r *Record) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	type record struct {
		RequestURL            string `xml:"requestUrl,attr,omitempty"`
		RequestURLTimeout     int    `xml:"requestUrlTimeout,attr,omitempty"`
		TerminatingDigits     string `xml:"terminatingDigits,attr,omitempty"`
		MaxDuration           int    `xml:"maxDuration,attr,omitempty"`
		Transcribe            bool   `xml:"transcribe,attr"`
		TranscribeCallbackURL string `xml:"transcribeCallbackUrl,attr,omitempty"`
		RecordingFileFormat   string `xml:"recordingFileFormat,attr,omitempty"`
	}

	out := record{
		RequestURL:            r.RequestURL,
		RequestURLTimeout:     r.RequestURLTimeout,
		TerminatingDigits:     r.TerminatingDigits,
		MaxDuration:           r.MaxDuration,
		Transcribe:            r.Transcribe,
		TranscribeCallbackURL: r.TranscribeCallbackURL,
		RecordingFileFormat:   string(r.RecordingFileFormat),
	}

	if out.MaxDuration == DefaultMaxDuration {
		out.MaxDuration = 0
	}

	return e.EncodeElement(out, xml.StartElement{Name: xml.Name{Local: r.verbName()}})
}

// UnmarshalXML restores DefaultMaxDuration when the attribute is absent.
func (r *Record) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type plain Record

	var decoded plain

	err := d.DecodeElement(&decoded, &start)
	if err != nil {
		return err
	}

	*r = Record(decoded)
	if r.MaxDuration == 0 {
		r.MaxDuration = DefaultMaxDuration
	}

	return nil
}

// SpeakSentence reads text to the caller with text-to-speech.
type SpeakSentence struct {
	XMLName  xml.Name         `xml:"SpeakSentence"`
	Sentence string           `xml:",chardata"`
	Voice    string           `xml:"voice,attr,omitempty"`
	Gender   bandwidth.Gender `xml:"gender,attr,omitempty"`
	Locale   string           `xml:"locale,attr,omitempty"`
}

func (*SpeakSentence) verbName() string { return "SpeakSentence" }

// Hangup ends the call.
type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

func (*Hangup) verbName() string { return "Hangup" }
