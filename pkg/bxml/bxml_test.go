package bxml_test

import (
	"encoding/xml"
	"testing"

	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/dannycabrera/bandwidth-go/pkg/bxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_MarshalXML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record *bxml.Record
		want   string
	}{
		{
			name:   "defaults omitted",
			record: bxml.NewRecord("https://example.com/cb"),
			want:   `<Record requestUrl="https://example.com/cb" transcribe="false"></Record>`,
		},
		{
			name:   "zero max duration omitted",
			record: &bxml.Record{RequestURL: "/cb"},
			want:   `<Record requestUrl="/cb" transcribe="false"></Record>`,
		},
		{
			name: "all attributes",
			record: &bxml.Record{
				RequestURL:            "/cb",
				RequestURLTimeout:     5000,
				TerminatingDigits:     "#",
				MaxDuration:           60,
				Transcribe:            true,
				TranscribeCallbackURL: "/transcribed",
				RecordingFileFormat:   bandwidth.RecordingFileFormatWAV,
			},
			want: `<Record requestUrl="/cb" requestUrlTimeout="5000" terminatingDigits="#" maxDuration="60" ` +
				`transcribe="true" transcribeCallbackUrl="/transcribed" recordingFileFormat="wav"></Record>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := xml.Marshal(tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestRecord_UnmarshalXML(t *testing.T) {
	t.Parallel()

	var record bxml.Record
	require.NoError(t, xml.Unmarshal([]byte(`<Record requestUrl="/cb" transcribe="true"/>`), &record))
	assert.Equal(t, "/cb", record.RequestURL)
	assert.True(t, record.Transcribe)
	assert.Equal(t, bxml.DefaultMaxDuration, record.MaxDuration)

	require.NoError(t, xml.Unmarshal([]byte(`<Record maxDuration="30"/>`), &record))
	assert.Equal(t, 30, record.MaxDuration)
}

func TestResponse_ToXML(t *testing.T) {
	t.Parallel()

	response := bxml.NewResponse(
		&bxml.SpeakSentence{Sentence: "Leave a message after the tone", Gender: bandwidth.GenderFemale, Locale: "en_US"},
	).Add(
		bxml.NewRecord("/recorded"),
		&bxml.Hangup{},
	)

	doc, err := response.ToXML()
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<Response>` +
		`<SpeakSentence gender="female" locale="en_US">Leave a message after the tone</SpeakSentence>` +
		`<Record requestUrl="/recorded" transcribe="false"></Record>` +
		`<Hangup></Hangup>` +
		`</Response>`
	assert.Equal(t, want, doc)
}

func TestResponse_Empty(t *testing.T) {
	t.Parallel()

	doc, err := bxml.NewResponse().ToXML()
	require.NoError(t, err)
	assert.Contains(t, doc, "<Response></Response>")
}
