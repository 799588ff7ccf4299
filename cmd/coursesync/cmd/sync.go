package cmd

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fairwaylabs/coursesync/internal/config"
	"github.com/fairwaylabs/coursesync/internal/golfcourseapi"
	"github.com/fairwaylabs/coursesync/pkg/catalog"
	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/logging"
	"github.com/fairwaylabs/coursesync/pkg/reconciler"
)

var (
	syncInJSON        string
	syncOutJSON       string
	syncOutCSV        string
	syncOutXLSX       string
	syncAreas         string
	syncLimit         int
	syncDelayMS       int
	syncTee           string
	syncAllowFallback bool
	syncForce         bool
	syncBaseURL       string
	syncAPIKey        string
)

// syncCmd represents the sync command.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the catalog against the course data provider",
	Long: `Sync walks the local course catalog, searches the provider for each
entry that is missing real par data, resolves the best-matching remote
course, selects a tee configuration, and writes validated 18-hole pars back
into the catalog.

The command will:
1. Load the catalog container (JSON or YAML)
2. Build search queries from each entry's name and kana reading
3. Query the provider, retrying transient failures
4. Score candidates and accept matches above the confidence threshold
5. Extract pars from the preferred tee configuration
6. Write the updated catalog, a run-metadata block, and a CSV export

The run is atomic with respect to the output files: nothing is written
until every entry has been processed.`,
	Example: `  coursesync sync --areas 25-30,40 --limit 10
  coursesync sync --tee Blue --allow-fallback=false
  coursesync sync --force --in-json data/courses.yaml --out-json data/courses.yaml`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&syncInJSON, "in-json", "public/course-index.json", "Input catalog (JSON or YAML)")
	syncCmd.Flags().StringVar(&syncOutJSON, "out-json", "", "Output catalog (default: same as input)")
	syncCmd.Flags().StringVar(&syncOutCSV, "out-csv", "public/course-index.csv", "Output CSV")
	syncCmd.Flags().StringVar(&syncOutXLSX, "out-xlsx", "", "Output XLSX workbook (optional)")
	syncCmd.Flags().StringVar(&syncAreas, "areas", "", "Limit to area codes, e.g. 25-30,40")
	syncCmd.Flags().IntVar(&syncLimit, "limit", 0, "Max entries to attempt (0 = unlimited)")
	syncCmd.Flags().IntVar(&syncDelayMS, "delay", int(constants.DefaultRequestDelay/time.Millisecond), "Delay between requests in milliseconds")
	syncCmd.Flags().StringVar(&syncTee, "tee", constants.DefaultTeeName, "Preferred tee configuration name")
	syncCmd.Flags().BoolVar(&syncAllowFallback, "allow-fallback", true, "Use another tee if the preferred one is not found")
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "Overwrite entries that already have pars")
	syncCmd.Flags().StringVar(&syncBaseURL, "base-url", constants.DefaultBaseURL, "Provider base URL")
	syncCmd.Flags().StringVar(&syncAPIKey, "api-key", "", "Provider API key (default: GOLFCOURSEAPI_KEY)")
}

func runSync(cmd *cobra.Command, _ []string) error {
	log := logging.Default()

	apiKey, err := config.APIKey(syncAPIKey)
	if err != nil {
		log.Error().Err(err).Msg("Missing provider API key")
		return err
	}

	outJSON := syncOutJSON
	if outJSON == "" {
		outJSON = syncInJSON
	}
	areaCodes := reconciler.ParseAreas(syncAreas)

	log.Info().
		Str("key", config.MaskKey(apiKey)).
		Str("input", syncInJSON).
		Str("output", outJSON).
		Str("tee", syncTee).
		Bool("allow_fallback", syncAllowFallback).
		Strs("areas", areaCodes).
		Msg("Starting catalog reconciliation")

	file, err := catalog.Load(syncInJSON)
	if err != nil {
		log.Error().Err(err).Str("path", syncInJSON).Msg("Failed to load catalog")
		return err
	}

	client := golfcourseapi.New(apiKey, golfcourseapi.WithBaseURL(syncBaseURL))
	rec := reconciler.New(client,
		reconciler.WithTeeName(syncTee),
		reconciler.WithAllowFallback(syncAllowFallback),
		reconciler.WithForce(syncForce),
		reconciler.WithLimit(syncLimit),
		reconciler.WithAreas(areaCodes),
		reconciler.WithDelay(time.Duration(syncDelayMS)*time.Millisecond),
		reconciler.WithLogger(log),
	)

	result, err := rec.Run(cmd.Context(), file.Entries)
	if err != nil {
		// Aborted mid-run; leave the catalog files untouched.
		log.Error().Err(err).Msg("Reconciliation aborted")
		return err
	}

	file.SetMeta("golfcourseapi", catalog.RunMeta{
		UpdatedAt:     time.Now().UTC(),
		RunID:         uuid.NewString(),
		Key:           config.MaskKey(apiKey),
		TeeName:       syncTee,
		AllowFallback: syncAllowFallback,
		MaxCourses:    syncLimit,
		AreaFilter:    areaCodes,
		Counts:        result.Counts(),
		Errors:        result.Failures,
	})

	if err := file.Save(outJSON); err != nil {
		log.Error().Err(err).Str("path", outJSON).Msg("Failed to write catalog")
		return err
	}
	if err := catalog.SaveCSV(syncOutCSV, file.Entries); err != nil {
		log.Error().Err(err).Str("path", syncOutCSV).Msg("Failed to write CSV")
		return err
	}
	if syncOutXLSX != "" {
		if err := catalog.SaveXLSX(syncOutXLSX, file.Entries); err != nil {
			log.Error().Err(err).Str("path", syncOutXLSX).Msg("Failed to write XLSX")
			return err
		}
	}

	log.Info().
		Str("json", outJSON).
		Str("csv", syncOutCSV).
		Msg("Done. " + result.Summary())
	return nil
}
