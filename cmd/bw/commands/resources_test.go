package commands_test

import (
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/dannycabrera/bandwidth-go/cmd/bw/commands"
	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCommandTrees(t *testing.T) {
	tests := []struct {
		name        string
		cmd         func() *cobra.Command
		use         string
		subcommands []string
	}{
		{name: "recordings", cmd: commands.NewRecordingsCommand, use: "recordings", subcommands: []string{"get", "list"}},
		{name: "messages", cmd: commands.NewMessagesCommand, use: "messages", subcommands: []string{"send", "get", "list"}},
		{name: "numbers", cmd: commands.NewNumbersCommand, use: "numbers", subcommands: []string{"list", "get", "release"}},
		{name: "npanxx", cmd: commands.NewNpaNxxCommand, use: "npanxx", subcommands: []string{"list"}},
		{name: "bxml", cmd: commands.NewBXMLCommand, use: "bxml", subcommands: []string{"record"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd()
			assert.Equal(t, tt.use, cmd.Use)
			assert.ElementsMatch(t, tt.subcommands, subcommandNames(cmd))

			for _, name := range tt.subcommands {
				sub := findSubcommand(cmd, name)
				require.NotNil(t, sub, name)
				assert.NotNil(t, sub.RunE, name)
			}
		})
	}
}

func TestRecordingsList(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/u-1/recordings", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id":"r-1","call":"c-1","state":"complete"}]`)
	})

	out, err := execute(commands.NewRecordingsCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "r-1")
	assert.Contains(t, out, "Complete")
}

func TestRecordingsGet_YAML(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/u-1/recordings/r-1", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":"r-1","media":"https://media/r-1.wav","state":"saving"}`)
	})
	viper.Set(commands.KeyOutput, constants.FormatYAML)

	out, err := execute(commands.NewRecordingsCommand(), "get", "r-1")
	require.NoError(t, err)
	assert.Contains(t, out, "id: r-1")
	assert.Contains(t, out, "state: saving")
}

func TestMessagesSend(t *testing.T) {
	var body map[string]interface{}

	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/users/u-1/messages", r.URL.Path)

		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)

		w.Header().Set("Location", "/v1/users/u-1/messages/m-42")
		w.WriteHeader(http.StatusCreated)
	})

	out, err := execute(commands.NewMessagesCommand(), "send", "--from", "+1", "--to", "+2", "--text", "hi there",
		"--media", "https://a/1.png,https://a/2.png")
	require.NoError(t, err)
	assert.Contains(t, out, "Message created: m-42")
	assert.Equal(t, "hi there", body["text"])
	assert.Equal(t, []interface{}{"https://a/1.png", "https://a/2.png"}, body["media"])

	_, err = execute(commands.NewMessagesCommand(), "send", "--to", "+2")
	require.ErrorIs(t, err, constants.ErrFromRequired)
}

func TestMessagesGet(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"m-1","from":"+1","to":"+2","state":"sent","direction":"out","text":"hello"}`)
	})

	out, err := execute(commands.NewMessagesCommand(), "get", "m-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Sent")
	assert.Contains(t, out, "hello")
}

func TestNumbersRelease(t *testing.T) {
	var deletes atomic.Int32

	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/users/u-1/phoneNumbers/n-1", r.URL.Path)
		deletes.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	out, err := execute(commands.NewNumbersCommand(), "release", "n-1")
	require.NoError(t, err)
	assert.Contains(t, out, "--force")
	assert.Equal(t, int32(0), deletes.Load())

	out, err = execute(commands.NewNumbersCommand(), "release", "n-1", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Phone number n-1 released")
	assert.Equal(t, int32(1), deletes.Load())
}

func TestNumbersList(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/u-1/phoneNumbers", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id":"n-1","number":"+19195551212","city":"RALEIGH","state":"NC"}]`)
	})

	out, err := execute(commands.NewNumbersCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "+19195551212")
	assert.Contains(t, out, "RALEIGH")
}

func TestNpaNxxList(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/u-1/availableNpaNxx", r.URL.Path)
		assert.Equal(t, "areaCode=919&quantity=2&state=NC", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<SearchResultForAvailableNpaNxx><AvailableNpaNxxList>` +
			`<AvailableNpaNxx><City>RALEIGH</City><State>NC</State><Npa>919</Npa><Nxx>555</Nxx><Quantity>7</Quantity></AvailableNpaNxx>` +
			`</AvailableNpaNxxList></SearchResultForAvailableNpaNxx>`))
	})
	viper.Set(commands.KeyOutput, constants.FormatJSON)

	out, err := execute(commands.NewNpaNxxCommand(), "list", "--area-code", "919", "--quantity", "2", "--state", "NC")
	require.NoError(t, err)

	var results []bandwidth.AvailableNpaNxx
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []bandwidth.AvailableNpaNxx{{City: "RALEIGH", State: "NC", Npa: "919", Nxx: "555", Quantity: 7}}, results)
}

func TestBXMLRecord(t *testing.T) {
	resetViper(t)

	out, err := execute(commands.NewBXMLCommand(), "record", "--request-url", "https://example.com/rec",
		"--transcribe", "--prompt", "Leave a message", "--hangup", "--file-format", "wav")
	require.NoError(t, err)
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<SpeakSentence>Leave a message</SpeakSentence>`)
	assert.Contains(t, out, `requestUrl="https://example.com/rec"`)
	assert.Contains(t, out, `transcribe="true"`)
	assert.Contains(t, out, `recordingFileFormat="wav"`)
	assert.Contains(t, out, `<Hangup></Hangup>`)
	assert.NotContains(t, out, "maxDuration")

	out, err = execute(commands.NewBXMLCommand(), "record", "--max-duration", "60")
	require.NoError(t, err)
	assert.Contains(t, out, `maxDuration="60"`)
	assert.Contains(t, out, `transcribe="false"`)
}
