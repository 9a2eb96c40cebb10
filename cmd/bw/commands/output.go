package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/events"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// writeOutput renders data as JSON or YAML, or calls table for the default
// table format.
func writeOutput(w io.Writer, data interface{}, table func(io.Writer) error) error {
	switch format := viper.GetString(KeyOutput); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.YAMLIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return err
		}

		return encoder.Close()
	case constants.FormatTable, "":
		return table(w)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutputFormat, format)
	}
}

// propertyTable renders two-column Property/Value rows.
func propertyTable(w io.Writer, rows [][2]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, row := range rows {
		_ = table.Append(row[0], valueOrNA(row[1]))
	}

	return table.Render()
}

// createdResult is printed by commands that create a resource.
type createdResult struct {
	ID string `json:"id" yaml:"id"`
}

func writeCreated(w io.Writer, kind, id string) error {
	return writeOutput(w, createdResult{ID: id}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s created: %s\n", kind, id)

		return err
	})
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// displayState title-cases an enum value, e.g. "completed" becomes "Completed".
func displayState[T ~string](state T) string {
	if state == "" {
		return constants.NotAvailable
	}

	return cases.Title(language.English).String(string(state))
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.RFC3339)
}

func formatInt(value int) string {
	if value == 0 {
		return ""
	}

	return strconv.Itoa(value)
}

// listFlags are the paging flags shared by list commands.
type listFlags struct {
	page     int
	size     int
	all      bool
	maxPages int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "page number")
	cmd.Flags().IntVar(&f.size, "size", 0, "items per page")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&f.maxPages, "max-pages", 0, "maximum pages to fetch with --all")
}

// listResources fetches the page selected by flags, or walks every page when
// --all is set.
func listResources[T any](ctx context.Context, flags *listFlags, fetch bandwidth.PageFunc[T]) ([]T, error) {
	if flags.all {
		size := flags.size
		if size == 0 {
			size = constants.StandardPageSize
		}

		return bandwidth.CollectPages(ctx, size, flags.maxPages, fetch)
	}

	return fetch(ctx, bandwidth.NewListOptions(flags.page, flags.size))
}

// publishCreated announces a created resource on NATS when nats_url is
// configured. A failed publish is reported on stderr and does not fail the
// command.
func publishCreated(cmd *cobra.Command, resource, id string) {
	config := loadConfig()

	err := publishEvent(cmd.Context(), config, &events.ResourceCreated{
		Resource: resource,
		ID:       id,
		UserID:   config.UserID,
	})
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
}

func publishEvent(ctx context.Context, config *Config, event *events.ResourceCreated) error {
	publisher, err := events.New(&events.Config{
		URL:      config.NATSURL,
		Subject:  config.NATSSubject,
		User:     config.NATSUser,
		Password: config.NATSPassword,
	})
	if err != nil {
		return err
	}

	defer func() { _ = publisher.Close() }()

	return publisher.PublishCreated(ctx, event)
}
