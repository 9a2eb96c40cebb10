package bandwidth

import (
	"encoding/xml"
	"time"
)

// Call represents a voice call.
type Call struct {
	ID                   string              `json:"id,omitempty"                   yaml:"id,omitempty"`
	Direction            Direction           `json:"direction,omitempty"            yaml:"direction,omitempty"`
	From                 string              `json:"from,omitempty"                 yaml:"from,omitempty"`
	To                   string              `json:"to,omitempty"                   yaml:"to,omitempty"`
	State                CallState           `json:"state,omitempty"                yaml:"state,omitempty"`
	StartTime            *time.Time          `json:"startTime,omitempty"            yaml:"start_time,omitempty"`
	ActiveTime           *time.Time          `json:"activeTime,omitempty"           yaml:"active_time,omitempty"`
	EndTime              *time.Time          `json:"endTime,omitempty"              yaml:"end_time,omitempty"`
	ChargeableDuration   int                 `json:"chargeableDuration,omitempty"   yaml:"chargeable_duration,omitempty"`
	CallbackURL          string              `json:"callbackUrl,omitempty"          yaml:"callback_url,omitempty"`
	CallbackHTTPMethod   string              `json:"callbackHttpMethod,omitempty"   yaml:"callback_http_method,omitempty"`
	CallbackTimeout      int                 `json:"callbackTimeout,omitempty"      yaml:"callback_timeout,omitempty"`
	FallbackURL          string              `json:"fallbackUrl,omitempty"          yaml:"fallback_url,omitempty"`
	BridgeID             string              `json:"bridgeId,omitempty"             yaml:"bridge_id,omitempty"`
	ConferenceID         string              `json:"conferenceId,omitempty"         yaml:"conference_id,omitempty"`
	RecordingEnabled     bool                `json:"recordingEnabled,omitempty"     yaml:"recording_enabled,omitempty"`
	RecordingFileFormat  RecordingFileFormat `json:"recordingFileFormat,omitempty"  yaml:"recording_file_format,omitempty"`
	RecordingMaxDuration int                 `json:"recordingMaxDuration,omitempty" yaml:"recording_max_duration,omitempty"`
	TranscriptionEnabled bool                `json:"transcriptionEnabled,omitempty" yaml:"transcription_enabled,omitempty"`
	CallTimeout          int                 `json:"callTimeout,omitempty"          yaml:"call_timeout,omitempty"`
	Tag                  string              `json:"tag,omitempty"                  yaml:"tag,omitempty"`
}

// PlayAudio describes audio to play into an active call. Set either FileURL or Sentence.
type PlayAudio struct {
	FileURL     string `json:"fileUrl,omitempty"     yaml:"file_url,omitempty"`
	Sentence    string `json:"sentence,omitempty"    yaml:"sentence,omitempty"`
	Gender      Gender `json:"gender,omitempty"      yaml:"gender,omitempty"`
	Locale      string `json:"locale,omitempty"      yaml:"locale,omitempty"`
	Voice       string `json:"voice,omitempty"       yaml:"voice,omitempty"`
	LoopEnabled bool   `json:"loopEnabled,omitempty" yaml:"loop_enabled,omitempty"`
	Tag         string `json:"tag,omitempty"         yaml:"tag,omitempty"`
}

// Recording represents a call recording.
type Recording struct {
	ID        string         `json:"id,omitempty"        yaml:"id,omitempty"`
	Media     string         `json:"media,omitempty"     yaml:"media,omitempty"`
	Call      string         `json:"call,omitempty"      yaml:"call,omitempty"`
	StartTime *time.Time     `json:"startTime,omitempty" yaml:"start_time,omitempty"`
	EndTime   *time.Time     `json:"endTime,omitempty"   yaml:"end_time,omitempty"`
	State     RecordingState `json:"state,omitempty"     yaml:"state,omitempty"`
}

// Message represents an SMS or MMS message.
type Message struct {
	ID          string       `json:"id,omitempty"          yaml:"id,omitempty"`
	From        string       `json:"from,omitempty"        yaml:"from,omitempty"`
	To          string       `json:"to,omitempty"          yaml:"to,omitempty"`
	Text        string       `json:"text,omitempty"        yaml:"text,omitempty"`
	Media       []string     `json:"media,omitempty"       yaml:"media,omitempty"`
	Direction   Direction    `json:"direction,omitempty"   yaml:"direction,omitempty"`
	State       MessageState `json:"state,omitempty"       yaml:"state,omitempty"`
	Time        *time.Time   `json:"time,omitempty"        yaml:"time,omitempty"`
	CallbackURL string       `json:"callbackUrl,omitempty" yaml:"callback_url,omitempty"`
	Tag         string       `json:"tag,omitempty"         yaml:"tag,omitempty"`
}

// PhoneNumber represents a number allocated to the account.
type PhoneNumber struct {
	ID             string     `json:"id,omitempty"             yaml:"id,omitempty"`
	Number         string     `json:"number,omitempty"         yaml:"number,omitempty"`
	NationalNumber string     `json:"nationalNumber,omitempty" yaml:"national_number,omitempty"`
	Name           string     `json:"name,omitempty"           yaml:"name,omitempty"`
	ApplicationID  string     `json:"applicationId,omitempty"  yaml:"application_id,omitempty"`
	FallbackNumber string     `json:"fallbackNumber,omitempty" yaml:"fallback_number,omitempty"`
	City           string     `json:"city,omitempty"           yaml:"city,omitempty"`
	State          string     `json:"state,omitempty"          yaml:"state,omitempty"`
	Price          string     `json:"price,omitempty"          yaml:"price,omitempty"`
	CreatedTime    *time.Time `json:"createdTime,omitempty"    yaml:"created_time,omitempty"`
}

// AvailableNpaNxx is one area code / exchange combination with free numbers.
type AvailableNpaNxx struct {
	City     string `xml:"City"     json:"city"     yaml:"city"`
	State    string `xml:"State"    json:"state"    yaml:"state"`
	Npa      string `xml:"Npa"      json:"npa"      yaml:"npa"`
	Nxx      string `xml:"Nxx"      json:"nxx"      yaml:"nxx"`
	Quantity int    `xml:"Quantity" json:"quantity" yaml:"quantity"`
}

// AvailableNpaNxxResult is the XML envelope wrapping an NPA-NXX search.
type AvailableNpaNxxResult struct {
	XMLName             xml.Name          `xml:"SearchResultForAvailableNpaNxx"`
	AvailableNpaNxxList []AvailableNpaNxx `xml:"AvailableNpaNxxList>AvailableNpaNxx"`
}

// AvailableNpaNxxQuery filters an NPA-NXX search. Zero fields are omitted.
type AvailableNpaNxxQuery struct {
	AreaCode string
	Quantity int
	State    string
}
