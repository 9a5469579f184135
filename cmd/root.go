// Package cmd implements the flightwatch command line interface.
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dstairlines/flightwatch/internal/config"
	"github.com/dstairlines/flightwatch/internal/display"
	"github.com/dstairlines/flightwatch/internal/flightapi"
	"github.com/dstairlines/flightwatch/internal/logging"
	"github.com/dstairlines/flightwatch/internal/rawstore"
	"github.com/dstairlines/flightwatch/internal/spinner"
)

const version = "0.1.0"

const sampleSize = 3

var (
	jsonOutput bool
	noColor    bool
	verbose    bool
	quiet      bool
	noSave     bool
	timeout    float64
	limit      int
)

var rootCmd = &cobra.Command{
	Use:          "flightwatch",
	Short:        "Poll live flight data and extract in-air flights",
	Long:         "Fetches the current flight list from the configured flight-tracking API, reports a stage-by-stage fetch status, and extracts the flights that are currently in the air.",
	SilenceUsage: true,
	RunE:         runFetch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not persist fetched payloads to disk")
	rootCmd.Flags().Float64VarP(&timeout, "timeout", "t", 0, "Request timeout in seconds (overrides config)")
	rootCmd.Flags().IntVarP(&limit, "limit", "l", 0, "Page-size limit sent to the API (overrides config)")
	rootCmd.Flags().Bool("version", false, "Show version and exit")

	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(renderCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Commands access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func runFetch(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		out("flightwatch %s\n", version)
		return nil
	}

	if verbose && quiet {
		verbose = false
	}
	logging.Configure(logging.Logger, logging.Flags{
		Verbose: verbose,
		Quiet:   quiet,
		NoColor: noColor,
		JSON:    jsonOutput,
	})

	cfg := config.Get()
	if cmd.Flags().Changed("timeout") {
		cfg.Fetch.Timeout = timeout
	}
	if cmd.Flags().Changed("limit") {
		cfg.API.Limit = limit
	}

	// Credential problems are hard errors, not fetch statuses: nothing was
	// attempted over the network yet.
	creds, err := config.ResolveCredentials(cfg)
	if err != nil {
		return err
	}

	client := flightapi.New(creds, time.Duration(cfg.Fetch.Timeout*float64(time.Second)))

	var status flightapi.FetchStatus
	if spinner.ShouldShow(quiet, jsonOutput, !isTerminal()) {
		if err := spinner.Run("Fetching in-air flights...", func() {
			status = client.Fetch(cmd.Context())
		}); err != nil {
			return err
		}
	} else {
		status = client.Fetch(cmd.Context())
	}

	logging.Logger.Debug("fetch complete",
		"verdict", status.Verdict(),
		"extracted", len(status.FlightsExtracted))

	if jsonOutput {
		if err := display.OutputJSON(outWriter, status); err != nil {
			return err
		}
	} else if quiet {
		outln(status.Verdict())
	} else {
		out("%s", display.RenderSummary(status, noColor))
		outln()
		out("%s", display.RenderSample(status, sampleSize, noColor))
	}

	if !noSave {
		persistPayloads(status)
	}

	return nil
}

// persistPayloads dumps the raw payload and the extracted flights to the
// raw-data directory. Persistence failures are logged, never fatal: the
// fetch result has already been reported.
func persistPayloads(status flightapi.FetchStatus) {
	store := rawstore.New(config.RawDataDir())
	chatty := !quiet && !jsonOutput

	if status.Raw != nil {
		path, err := store.Save(status.Raw, "aviationstack_raw")
		if err != nil {
			logging.Logger.Warn("could not save raw payload", "err", err)
		} else if chatty {
			out("\nRaw payload saved to: %s\n", path)
		}
	}

	if status.ExtractedAny {
		path, err := store.Save(status.FlightsExtracted, "in_air_flights")
		if err != nil {
			logging.Logger.Warn("could not save extracted flights", "err", err)
		} else if chatty {
			out("Extracted in-air flights saved to: %s\n", path)
		}
	} else if chatty {
		outln("\nNo in-air flights extracted, so no extracted file saved.")
	}
}
