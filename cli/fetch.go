package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"splist"
)

func newFetchCmd() *cobra.Command {
	var subfolder string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the items of a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagList == "" {
				return fmt.Errorf("--list is required")
			}

			ctx := cmd.Context()
			var (
				items *splist.ItemSet
				err   error
			)
			if subfolder != "" {
				items, err = client.FetchAllInSubfolder(ctx, subfolder)
			} else {
				items, err = client.FetchAll(ctx)
			}
			if err != nil {
				return err
			}

			logger.Info("fetched items", "list", flagList, "count", len(items.Items))

			out, err := json.MarshalIndent(items.Items, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))

			if items.NextLink != "" {
				logger.Info("more items available", "next", items.NextLink)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subfolder, "subfolder", "", "Scope results to a list subfolder")
	return cmd
}
