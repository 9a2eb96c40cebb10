package commands_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/dannycabrera/bandwidth-go/cmd/bw/commands"
	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	natstest "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCallsCommand(t *testing.T) {
	cmd := commands.NewCallsCommand()
	assert.Equal(t, "calls", cmd.Use)
	assert.Equal(t, []string{"call"}, cmd.Aliases)
	assert.ElementsMatch(t, []string{"create", "get", "update", "list", "play"}, subcommandNames(cmd))

	create := findSubcommand(cmd, "create")
	require.NotNil(t, create)
	assert.NotNil(t, create.Flags().Lookup("from"))
	assert.NotNil(t, create.Flags().Lookup("to"))
	assert.NotNil(t, create.Flags().Lookup("callback-url"))

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)

	for _, name := range []string{"page", "size", "all", "max-pages"} {
		assert.NotNil(t, list.Flags().Lookup(name), name)
	}
}

func TestCallsCreate(t *testing.T) {
	var body map[string]interface{}

	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/users/u-1/calls", r.URL.Path)
		assert.Equal(t, constants.CLIUserAgent, r.Header.Get("User-Agent"))

		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)

		w.Header().Set("Location", "https://api.example.com/v1/users/u-1/calls/c-123")
		w.WriteHeader(http.StatusCreated)
	})

	out, err := execute(commands.NewCallsCommand(), "create", "--from", "+19195551212", "--to", "+19195551313",
		"--recording-format", "WAV")
	require.NoError(t, err)
	assert.Contains(t, out, "Call created: c-123")
	assert.Equal(t, "+19195551212", body["from"])
	assert.Equal(t, "+19195551313", body["to"])
	assert.Equal(t, "wav", body["recordingFileFormat"])
}

func TestCallsCreate_JSONOutput(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/v1/users/u-1/calls/c-9")
		w.WriteHeader(http.StatusCreated)
	})
	viper.Set(commands.KeyOutput, constants.FormatJSON)

	out, err := execute(commands.NewCallsCommand(), "create", "--from", "+1", "--to", "+2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c-9"}`, out)
}

func TestCallsCreate_PublishFailureIsAWarning(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/v1/users/u-1/calls/c-7")
		w.WriteHeader(http.StatusCreated)
	})
	viper.Set(commands.KeyNATSURL, "nats://127.0.0.1:1")

	out, err := execute(commands.NewCallsCommand(), "create", "--from", "+1", "--to", "+2")
	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "Call created: c-7")
}

func TestCallsCreate_PublishesEvent(t *testing.T) {
	opts := natstest.DefaultTestOptions
	opts.Port = -1

	server := natstest.RunServer(&opts)
	t.Cleanup(server.Shutdown)

	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	sub, err := nc.SubscribeSync("bw.test.calls")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/v1/users/u-1/calls/c-8")
		w.WriteHeader(http.StatusCreated)
	})
	viper.Set(commands.KeyNATSURL, server.ClientURL())
	viper.Set(commands.KeyNATSSubject, "bw.test")

	out, err := execute(commands.NewCallsCommand(), "create", "--from", "+1", "--to", "+2")
	require.NoError(t, err)
	assert.NotContains(t, out, "Warning:")

	msg, err := sub.NextMsg(constants.EventFlushTimeout)
	require.NoError(t, err)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, "calls", event["resource"])
	assert.Equal(t, "c-8", event["id"])
	assert.Equal(t, "u-1", event["userId"])
}

func TestCallsCreate_Validation(t *testing.T) {
	var hits atomic.Int32

	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	_, err := execute(commands.NewCallsCommand(), "create", "--to", "+2")
	require.ErrorIs(t, err, constants.ErrFromRequired)

	_, err = execute(commands.NewCallsCommand(), "create", "--from", "+1")
	require.ErrorIs(t, err, constants.ErrToRequired)

	_, err = execute(commands.NewCallsCommand(), "create", "--from", "+1", "--to", "+2", "--recording-format", "ogg")
	require.ErrorIs(t, err, bandwidth.ErrInvalidEnumValue)

	assert.Equal(t, int32(0), hits.Load())
}

func TestCallsCreate_MissingLocation(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	_, err := execute(commands.NewCallsCommand(), "create", "--from", "+1", "--to", "+2")
	require.ErrorIs(t, err, bandwidth.ErrProtocol)
	assert.Contains(t, err.Error(), "missing id in response")
}

func TestCallsGet(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/u-1/calls/c-1", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":"c-1","from":"+1","to":"+2","state":"completed","direction":"out"}`)
	})

	out, err := execute(commands.NewCallsCommand(), "get", "c-1")
	require.NoError(t, err)
	assert.Contains(t, out, "c-1")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "Out")
}

func TestCallsGet_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, `{"category":"not-found","code":"call-not-found","message":"gone"}`)
		})

		_, err := execute(commands.NewCallsCommand(), "get", "c-1")
		require.Error(t, err)
		assert.True(t, bandwidth.IsNotFound(err))
	})

	t.Run("empty body", func(t *testing.T) {
		setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		_, err := execute(commands.NewCallsCommand(), "get", "c-1")
		require.ErrorIs(t, err, constants.ErrEmptyResponse)
	})

	t.Run("no credentials", func(t *testing.T) {
		resetViper(t)

		_, err := execute(commands.NewCallsCommand(), "get", "c-1")
		require.ErrorIs(t, err, constants.ErrNoCredentialsConfigured)
	})
}

func TestCallsUpdate(t *testing.T) {
	var body map[string]interface{}

	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/users/u-1/calls/c-1", r.URL.Path)

		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)

		w.WriteHeader(http.StatusOK)
	})

	out, err := execute(commands.NewCallsCommand(), "update", "c-1", "--state", "COMPLETED")
	require.NoError(t, err)
	assert.Contains(t, out, "Call c-1 updated")
	assert.Equal(t, map[string]interface{}{"state": "completed"}, body)
}

func TestCallsUpdate_Validation(t *testing.T) {
	resetViper(t)

	_, err := execute(commands.NewCallsCommand(), "update", "c-1")
	require.ErrorIs(t, err, constants.ErrNoUpdateSpecified)

	_, err = execute(commands.NewCallsCommand(), "update", "c-1", "--state", "ringing")
	require.ErrorIs(t, err, bandwidth.ErrInvalidEnumValue)
}

func TestCallsPlay(t *testing.T) {
	var body map[string]interface{}

	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/u-1/calls/c-1/audio", r.URL.Path)

		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)

		w.WriteHeader(http.StatusOK)
	})

	_, err := execute(commands.NewCallsCommand(), "play", "c-1")
	require.ErrorIs(t, err, constants.ErrAudioRequired)

	out, err := execute(commands.NewCallsCommand(), "play", "c-1", "--sentence", "Hello", "--gender", "female")
	require.NoError(t, err)
	assert.Contains(t, out, "Playing audio on call c-1")
	assert.Equal(t, "Hello", body["sentence"])
	assert.Equal(t, "female", body["gender"])
}

func TestCallsList_All(t *testing.T) {
	var requests atomic.Int32

	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "2", r.URL.Query().Get("size"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		switch page {
		case 1:
			writeJSON(w, http.StatusOK, `[{"id":"c-1"},{"id":"c-2"}]`)
		case 2:
			writeJSON(w, http.StatusOK, `[{"id":"c-3"}]`)
		default:
			t.Errorf("unexpected page %d", page)
		}
	})
	viper.Set(commands.KeyOutput, constants.FormatJSON)

	out, err := execute(commands.NewCallsCommand(), "list", "--all", "--size", "2")
	require.NoError(t, err)

	var calls []bandwidth.Call
	require.NoError(t, json.Unmarshal([]byte(out), &calls))
	require.Len(t, calls, 3)
	assert.Equal(t, "c-3", calls[2].ID)
	assert.Equal(t, int32(2), requests.Load())
}

func TestCallsList_SinglePage(t *testing.T) {
	setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "page=2&size=50", r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `[]`)
	})

	out, err := execute(commands.NewCallsCommand(), "list", "--page", "2", "--size", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "No calls found")
}
