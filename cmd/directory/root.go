package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "directory",
	Short: "Inspect the cancellation directory",
	Long: `Reads the cancellation directory CSV the API serves and prints the
canonical options, search results or vendor matches as JSON.

The file path comes from --csv, then DIRECTORY_CSV_PATH, then the
server default.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	v.SetDefault("csv_path", "data/cancel_directory.csv")
	v.SetDefault("search_limit", 6)
	v.SetDefault("match_max_distance", 3)

	v.SetEnvPrefix("DIRECTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.PersistentFlags().String("csv", "", "path to the directory CSV")
	rootCmd.PersistentFlags().Int("search-limit", 0, "maximum number of search results")
	rootCmd.PersistentFlags().Int("match-max-distance", 0, "largest edit distance accepted by match")
	rootCmd.PersistentFlags().Bool("verbose", false, "log directory loads to stderr")

	_ = v.BindPFlag("csv_path", rootCmd.PersistentFlags().Lookup("csv"))
	_ = v.BindPFlag("search_limit", rootCmd.PersistentFlags().Lookup("search-limit"))
	_ = v.BindPFlag("match_max_distance", rootCmd.PersistentFlags().Lookup("match-max-distance"))
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// directoryConfig resolves the same settings the API reads from
// DIRECTORY_CSV_PATH, DIRECTORY_SEARCH_LIMIT and DIRECTORY_MATCH_MAX_DISTANCE.
// Flags left unset fall back to the environment.
func directoryConfig() *config.DirectoryConfig {
	return &config.DirectoryConfig{
		CSVPath:          v.GetString("csv_path"),
		SearchLimit:      v.GetInt("search_limit"),
		MatchMaxDistance: v.GetInt("match_max_distance"),
	}
}

func newDirectoryService() services.DirectoryServiceInterface {
	out := io.Discard
	if v.GetBool("verbose") {
		out = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(out, nil))

	return services.NewDirectoryService(
		directoryConfig(),
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
		services.NewActivityLogger(logger),
	)
}

func printJSON(w io.Writer, value interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
