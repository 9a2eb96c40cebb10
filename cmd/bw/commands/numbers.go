package commands

import (
	"fmt"
	"io"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewNumbersCommand creates the numbers command group.
func NewNumbersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "numbers",
		Aliases: []string{"number", "phone-numbers"},
		Short:   "Manage phone numbers",
		Long:    "List, inspect and release phone numbers allocated to the account",
	}

	cmd.AddCommand(newNumbersListCommand())
	cmd.AddCommand(newNumbersGetCommand())
	cmd.AddCommand(newNumbersReleaseCommand())

	return cmd
}

func newNumbersListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List phone numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			numbers, err := listResources(cmd.Context(), flags, client.PhoneNumbers().List)
			if err != nil {
				return fmt.Errorf("failed to list phone numbers: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), numbers, func(w io.Writer) error {
				if len(numbers) == 0 {
					_, _ = fmt.Fprintln(w, "No phone numbers found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "Number", "Name", "City", "State", "Application")

				for _, number := range numbers {
					_ = table.Append(number.ID, number.Number, valueOrNA(number.Name), valueOrNA(number.City),
						valueOrNA(number.State), valueOrNA(number.ApplicationID))
				}

				return table.Render()
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newNumbersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NUMBER_ID",
		Short: "Get phone number details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			number, err := client.PhoneNumbers().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get phone number: %w", err)
			}

			if number == nil {
				return fmt.Errorf("phone number %s: %w", args[0], constants.ErrEmptyResponse)
			}

			return writeOutput(cmd.OutOrStdout(), number, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"ID", number.ID},
					{"Number", number.Number},
					{"National Number", number.NationalNumber},
					{"Name", number.Name},
					{"Application", number.ApplicationID},
					{"Fallback Number", number.FallbackNumber},
					{"City", number.City},
					{"State", number.State},
					{"Price", number.Price},
					{"Created", formatTime(number.CreatedTime)},
				})
			})
		},
	}
}

func newNumbersReleaseCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "release NUMBER_ID",
		Short: "Release a phone number",
		Long:  "Release a phone number from the account. The number can not be recovered afterwards.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Really release phone number %s? Use --force to confirm\n", args[0])

				return nil
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			err = client.PhoneNumbers().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to release phone number: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Phone number %s released\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "release without confirmation")

	return cmd
}
