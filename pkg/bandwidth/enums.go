package bandwidth

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CallState is the lifecycle state of a call.
type CallState string

const (
	CallStateStarted      CallState = "started"
	CallStateRejected     CallState = "rejected"
	CallStateActive       CallState = "active"
	CallStateCompleted    CallState = "completed"
	CallStateTransferring CallState = "transferring"
)

var callStates = []CallState{
	CallStateStarted, CallStateRejected, CallStateActive, CallStateCompleted, CallStateTransferring,
}

// MarshalJSON implements json.Marshaler.
func (s CallState) MarshalJSON() ([]byte, error) { return marshalEnum(s, callStates) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *CallState) UnmarshalJSON(data []byte) error { return unmarshalEnum(data, s, callStates) }

// Direction is the direction of a call or message relative to the account.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

var directions = []Direction{DirectionIn, DirectionOut}

// MarshalJSON implements json.Marshaler.
func (d Direction) MarshalJSON() ([]byte, error) { return marshalEnum(d, directions) }

// UnmarshalJSON implements json.Unmarshaler.
func (d *Direction) UnmarshalJSON(data []byte) error { return unmarshalEnum(data, d, directions) }

// RecordingState is the state of a call recording.
type RecordingState string

const (
	RecordingStateRecording RecordingState = "recording"
	RecordingStateSaving    RecordingState = "saving"
	RecordingStateComplete  RecordingState = "complete"
	RecordingStateError     RecordingState = "error"
)

var recordingStates = []RecordingState{
	RecordingStateRecording, RecordingStateSaving, RecordingStateComplete, RecordingStateError,
}

// MarshalJSON implements json.Marshaler.
func (s RecordingState) MarshalJSON() ([]byte, error) { return marshalEnum(s, recordingStates) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *RecordingState) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, recordingStates)
}

// RecordingFileFormat is the audio container used for call recordings.
type RecordingFileFormat string

const (
	RecordingFileFormatMP3 RecordingFileFormat = "mp3"
	RecordingFileFormatWAV RecordingFileFormat = "wav"
)

var recordingFileFormats = []RecordingFileFormat{RecordingFileFormatMP3, RecordingFileFormatWAV}

// MarshalJSON implements json.Marshaler.
func (f RecordingFileFormat) MarshalJSON() ([]byte, error) {
	return marshalEnum(f, recordingFileFormats)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *RecordingFileFormat) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, f, recordingFileFormats)
}

// MessageState is the delivery state of a message.
type MessageState string

const (
	MessageStateReceived MessageState = "received"
	MessageStateQueued   MessageState = "queued"
	MessageStateSending  MessageState = "sending"
	MessageStateSent     MessageState = "sent"
	MessageStateError    MessageState = "error"
)

var messageStates = []MessageState{
	MessageStateReceived, MessageStateQueued, MessageStateSending, MessageStateSent, MessageStateError,
}

// MarshalJSON implements json.Marshaler.
func (s MessageState) MarshalJSON() ([]byte, error) { return marshalEnum(s, messageStates) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *MessageState) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, messageStates)
}

// Gender selects the voice used for text-to-speech.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

var genders = []Gender{GenderFemale, GenderMale}

// MarshalJSON implements json.Marshaler.
func (g Gender) MarshalJSON() ([]byte, error) { return marshalEnum(g, genders) }

// UnmarshalJSON implements json.Unmarshaler.
func (g *Gender) UnmarshalJSON(data []byte) error { return unmarshalEnum(data, g, genders) }

// ParseCallState parses a call state name, ignoring case.
func ParseCallState(value string) (CallState, error) {
	return parseEnum(value, callStates)
}

// ParseGender parses a voice gender, ignoring case.
func ParseGender(value string) (Gender, error) {
	return parseEnum(value, genders)
}

// ParseRecordingFileFormat parses a recording file format, ignoring case.
func ParseRecordingFileFormat(value string) (RecordingFileFormat, error) {
	return parseEnum(value, recordingFileFormats)
}

func parseEnum[T ~string](value string, allowed []T) (T, error) {
	for _, candidate := range allowed {
		if strings.EqualFold(string(candidate), value) {
			return candidate, nil
		}
	}

	var zero T

	return zero, fmt.Errorf("%w: %q is not a valid %T", ErrInvalidEnumValue, value, zero)
}

func marshalEnum[T ~string](value T, allowed []T) ([]byte, error) {
	if value == "" {
		return []byte(`""`), nil
	}

	canonical, err := parseEnum(string(value), allowed)
	if err != nil {
		return nil, err
	}

	return json.Marshal(string(canonical))
}

// unmarshalEnum accepts only a JSON string naming one of the allowed values.
// Integer encodings are rejected.
func unmarshalEnum[T ~string](data []byte, target *T, allowed []T) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}

	if !strings.HasPrefix(trimmed, `"`) {
		return fmt.Errorf("%w: %T must be encoded as a string, got %s", ErrInvalidEnumValue, *target, trimmed)
	}

	var name string

	err := json.Unmarshal(data, &name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnumValue, err)
	}

	if name == "" {
		*target = ""

		return nil
	}

	value, err := parseEnum(name, allowed)
	if err != nil {
		return err
	}

	*target = value

	return nil
}
