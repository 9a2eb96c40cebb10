package commands_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dannycabrera/bandwidth-go/cmd/bw/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// subcommandNames lists the names of cmd's direct subcommands.
func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

// resetViper clears global configuration before and after a test.
func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// setupAPI starts a fake API and points the CLI configuration at it.
func setupAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	resetViper(t)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	viper.Set(commands.KeyHost, server.URL)
	viper.Set(commands.KeyUserID, "u-1")
	viper.Set(commands.KeyAPIToken, "token")
	viper.Set(commands.KeyAPISecret, "secret")

	return server
}

// execute runs cmd with args and returns everything written to stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))

	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
