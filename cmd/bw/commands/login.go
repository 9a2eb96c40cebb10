package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type loginOptions struct {
	userID string
	token  string
	secret string
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save API credentials",
		Long: `Save the account user id, API token and API secret to the configuration file.

When --secret is omitted and stdin is a terminal, the secret is prompted for
without echo. A --host given to bw is saved along with the credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := opts.complete(cmd)
			if err != nil {
				return err
			}

			err = persister.Update(func(config *Config) error {
				config.UserID = opts.userID
				config.APIToken = opts.token
				config.APISecret = opts.secret

				return nil
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Credentials saved for user %s\n", opts.userID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.userID, "user-id", "u", "", "account user id")
	cmd.Flags().StringVarP(&opts.token, "token", "t", "", "API token")
	cmd.Flags().StringVarP(&opts.secret, "secret", "s", "", "API secret")

	return cmd
}

// complete prompts for whatever was not given as a flag.
func (o *loginOptions) complete(cmd *cobra.Command) error {
	reader := bufio.NewReader(cmd.InOrStdin())

	if o.userID == "" {
		o.userID = prompt(cmd, reader, "User ID: ")
	}

	if o.token == "" {
		o.token = prompt(cmd, reader, "API Token: ")
	}

	if o.secret == "" && cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API Secret: ")

		secretBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read API secret: %w", err)
		}

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		o.secret = string(secretBytes)
	}

	switch {
	case o.userID == "":
		return fmt.Errorf("%w: user id", constants.ErrNoCredentialsConfigured)
	case o.token == "":
		return fmt.Errorf("%w: API token", constants.ErrNoCredentialsConfigured)
	case o.secret == "":
		return constants.ErrSecretRequired
	}

	return nil
}

func prompt(cmd *cobra.Command, reader *bufio.Reader, label string) string {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), label)

	line, _ := reader.ReadString('\n')

	return strings.TrimSpace(line)
}
