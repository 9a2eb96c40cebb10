package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/logging"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/dannycabrera/bandwidth-go/pkg/bwclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration keys, shared by the config file, BANDWIDTH_* environment
// variables and bound flags.
const (
	KeyUserID      = "user_id"
	KeyAPIToken    = "api_token"
	KeyAPISecret   = "api_secret"
	KeyHost        = "host"
	KeyOutput      = "output"
	KeyNATSURL     = "nats_url"
	KeyNATSSubject = "nats_subject"
	KeyNATSUser    = "nats_user"
	KeyNATSPass    = "nats_password"
)

// Config represents the CLI configuration.
type Config struct {
	UserID       string `json:"user_id,omitempty"       yaml:"user_id,omitempty"`
	APIToken     string `json:"api_token,omitempty"     yaml:"api_token,omitempty"`
	APISecret    string `json:"api_secret,omitempty"    yaml:"api_secret,omitempty"`
	Host         string `json:"host,omitempty"          yaml:"host,omitempty"`
	Output       string `json:"output,omitempty"        yaml:"output,omitempty"`
	NATSURL      string `json:"nats_url,omitempty"      yaml:"nats_url,omitempty"`
	NATSSubject  string `json:"nats_subject,omitempty"  yaml:"nats_subject,omitempty"`
	NATSUser     string `json:"nats_user,omitempty"     yaml:"nats_user,omitempty"`
	NATSPassword string `json:"nats_password,omitempty" yaml:"nats_password,omitempty"`
}

// HasCredentials reports whether all API credentials are set.
func (c *Config) HasCredentials() bool {
	return c.UserID != "" && c.APIToken != "" && c.APISecret != ""
}

// Redacted returns a copy with secrets masked.
func (c *Config) Redacted() *Config {
	redacted := *c
	if redacted.APISecret != "" {
		redacted.APISecret = constants.MaskedSecret
	}

	if redacted.NATSPassword != "" {
		redacted.NATSPassword = constants.MaskedSecret
	}

	return &redacted
}

// configFields maps every settable key to its field.
func (c *Config) configFields() map[string]*string {
	return map[string]*string{
		KeyUserID:      &c.UserID,
		KeyAPIToken:    &c.APIToken,
		KeyAPISecret:   &c.APISecret,
		KeyHost:        &c.Host,
		KeyOutput:      &c.Output,
		KeyNATSURL:     &c.NATSURL,
		KeyNATSSubject: &c.NATSSubject,
		KeyNATSUser:    &c.NATSUser,
		KeyNATSPass:    &c.NATSPassword,
	}
}

// Set assigns key.
func (c *Config) Set(key, value string) error {
	field, ok := c.configFields()[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	*field = value

	return nil
}

// ConfigKeys lists the settable keys in sorted order.
func ConfigKeys() []string {
	keys := make([]string, 0)
	for key := range (&Config{}).configFields() {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func loadConfig() *Config {
	return &Config{
		UserID:       viper.GetString(KeyUserID),
		APIToken:     viper.GetString(KeyAPIToken),
		APISecret:    viper.GetString(KeyAPISecret),
		Host:         viper.GetString(KeyHost),
		Output:       viper.GetString(KeyOutput),
		NATSURL:      viper.GetString(KeyNATSURL),
		NATSSubject:  viper.GetString(KeyNATSSubject),
		NATSUser:     viper.GetString(KeyNATSUser),
		NATSPassword: viper.GetString(KeyNATSPass),
	}
}

// ConfigPersister serializes read-modify-write cycles of the config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

//nolint:gochecknoglobals // One persister guards the single config file.
var persister = NewConfigPersister()

// Update loads the config, applies mutate and writes the result back. Viper
// sees the new values immediately.
func (p *ConfigPersister) Update(mutate func(config *Config) error) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()

	err := mutate(config)
	if err != nil {
		return err
	}

	err = saveConfigStruct(config)
	if err != nil {
		return err
	}

	for key, field := range config.configFields() {
		viper.Set(key, *field)
	}

	return nil
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateClient builds an API client from the current configuration. With
// --verbose the transport logs each round trip to the command's stderr.
func CreateClient(cmd *cobra.Command) (bandwidth.Client, error) {
	config := loadConfig()
	if !config.HasCredentials() {
		return nil, constants.ErrNoCredentialsConfigured
	}

	clientConfig := &bandwidth.Config{
		UserID:    config.UserID,
		APIToken:  config.APIToken,
		APISecret: config.APISecret,
		Host:      config.Host,
		UserAgent: constants.CLIUserAgent,
	}

	if viper.GetBool("verbose") {
		clientConfig.Debug = true
		clientConfig.Logger = logging.New(cmd.ErrOrStderr(), "debug").With(map[string]interface{}{
			"user_id": config.UserID,
		})
	}

	return bwclient.New(clientConfig)
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the bw CLI configuration stored in ~/.bandwidth/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().Redacted()

			return writeOutput(cmd.OutOrStdout(), config, func(w io.Writer) error {
				return displayConfigTable(w, config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Valid keys: " + fmt.Sprint(ConfigKeys()),
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			err := persister.Update(func(config *Config) error {
				return config.Set(args[0], args[1])
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := persister.Update(func(config *Config) error {
				return config.Set(args[0], "")
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func displayConfigTable(w io.Writer, config *Config) error {
	fields := config.configFields()

	table := tablewriter.NewWriter(w)
	table.Header("Key", "Value")

	for _, key := range ConfigKeys() {
		_ = table.Append(key, valueOrNA(*fields[key]))
	}

	return table.Render()
}
