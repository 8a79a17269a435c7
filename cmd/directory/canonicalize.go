package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize",
	Short: "Print the canonical directory options",
	Long: `Parses the CSV, merges duplicate services and prints one option per
service in display order together with the ETag the API would send.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := newDirectoryService().GetSnapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("load directory: %w", err)
		}

		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"etag":    snapshot.ETag,
			"count":   len(snapshot.Options),
			"options": snapshot.Options,
		})
	},
}

func init() {
	rootCmd.AddCommand(canonicalizeCmd)
}
