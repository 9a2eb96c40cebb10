package commands

import (
	"fmt"
	"io"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRecordingsCommand creates the recordings command group.
func NewRecordingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recordings",
		Aliases: []string{"recording", "rec"},
		Short:   "View call recordings",
		Long:    "List and inspect call recordings",
	}

	cmd.AddCommand(newRecordingsGetCommand())
	cmd.AddCommand(newRecordingsListCommand())

	return cmd
}

func newRecordingsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get RECORDING_ID",
		Short: "Get recording details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			recording, err := client.Recordings().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get recording: %w", err)
			}

			if recording == nil {
				return fmt.Errorf("recording %s: %w", args[0], constants.ErrEmptyResponse)
			}

			return writeOutput(cmd.OutOrStdout(), recording, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"ID", recording.ID},
					{"Call", recording.Call},
					{"Media", recording.Media},
					{"State", displayState(recording.State)},
					{"Start Time", formatTime(recording.StartTime)},
					{"End Time", formatTime(recording.EndTime)},
				})
			})
		},
	}
}

func newRecordingsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recordings",
		Long:  "List call recordings, one page at a time or all pages with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			recordings, err := listResources(cmd.Context(), flags, client.Recordings().List)
			if err != nil {
				return fmt.Errorf("failed to list recordings: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), recordings, func(w io.Writer) error {
				if len(recordings) == 0 {
					_, _ = fmt.Fprintln(w, "No recordings found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "Call", "State", "Start Time", "End Time")

				for _, recording := range recordings {
					_ = table.Append(recording.ID, valueOrNA(recording.Call), displayState(recording.State),
						valueOrNA(formatTime(recording.StartTime)), valueOrNA(formatTime(recording.EndTime)))
				}

				return table.Render()
			})
		},
	}

	flags.register(cmd)

	return cmd
}
