package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item <id>",
		Short: "Fetch a single list item by its integer ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagList == "" {
				return fmt.Errorf("--list is required")
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("item ID must be an integer: %q", args[0])
			}

			item, err := client.FetchItem(cmd.Context(), id)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(item, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}
}
