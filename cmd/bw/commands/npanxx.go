package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewNpaNxxCommand creates the npanxx command group.
func NewNpaNxxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "npanxx",
		Short: "Search available area code / exchange combinations",
	}

	cmd.AddCommand(newNpaNxxListCommand())

	return cmd
}

func newNpaNxxListCommand() *cobra.Command {
	query := &bandwidth.AvailableNpaNxxQuery{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available NPA-NXX combinations",
		Long:  "List area code / exchange combinations that have numbers available for ordering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			results, err := client.AvailableNpaNxx().List(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("failed to search NPA-NXX: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), results, func(w io.Writer) error {
				if len(results) == 0 {
					_, _ = fmt.Fprintln(w, "No NPA-NXX combinations found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("NPA", "NXX", "City", "State", "Quantity")

				for _, result := range results {
					_ = table.Append(result.Npa, result.Nxx, result.City, result.State, strconv.Itoa(result.Quantity))
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().StringVar(&query.AreaCode, "area-code", "", "three digit area code")
	cmd.Flags().IntVar(&query.Quantity, "quantity", 0, "minimum numbers available")
	cmd.Flags().StringVar(&query.State, "state", "", "two letter state code")

	return cmd
}
