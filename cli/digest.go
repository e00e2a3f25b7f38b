package cli

import (
	"github.com/spf13/cobra"
)

func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Refresh and print the request digest for the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := client.RefreshDigest(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(digest)
			return nil
		},
	}
}
