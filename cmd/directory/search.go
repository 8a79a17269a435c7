package main

import (
	"fmt"
	"strings"

	"subscription-tracker/internal/models"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fuzzy search the directory by service name",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		options, err := newDirectoryService().Search(cmd.Context(), query, v.GetInt("search_limit"))
		if err != nil {
			return fmt.Errorf("search directory: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), options)
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <vendor name>",
	Short: "Show which option a detected vendor would link to",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		directory := newDirectoryService()
		snapshot, err := directory.GetSnapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("load directory: %w", err)
		}

		name := strings.Join(args, " ")
		vendor := models.DetectedVendor{ID: models.Slugify(name), Name: name}

		option, ok := directory.Match(snapshot.Options, vendor)
		if !ok {
			return fmt.Errorf("no directory option matches %q", name)
		}
		return printJSON(cmd.OutOrStdout(), option)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(matchCmd)
}
