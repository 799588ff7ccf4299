package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fairwaylabs/coursesync/pkg/catalog"
	"github.com/fairwaylabs/coursesync/pkg/logging"
)

var (
	exportIn   string
	exportCSV  string
	exportXLSX string
)

// exportCmd regenerates the flat-table exports from a catalog without
// touching the network.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as CSV and/or XLSX",
	Example: `  coursesync export --in-json public/course-index.json --out-csv courses.csv
  coursesync export --out-xlsx courses.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportIn, "in-json", "public/course-index.json", "Input catalog (JSON or YAML)")
	exportCmd.Flags().StringVar(&exportCSV, "out-csv", "", "Output CSV path")
	exportCmd.Flags().StringVar(&exportXLSX, "out-xlsx", "", "Output XLSX path")
}

func runExport(_ *cobra.Command, _ []string) error {
	log := logging.Default()

	if exportCSV == "" && exportXLSX == "" {
		exportCSV = "public/course-index.csv"
	}

	file, err := catalog.Load(exportIn)
	if err != nil {
		log.Error().Err(err).Str("path", exportIn).Msg("Failed to load catalog")
		return err
	}

	if exportCSV != "" {
		if err := catalog.SaveCSV(exportCSV, file.Entries); err != nil {
			log.Error().Err(err).Str("path", exportCSV).Msg("Failed to write CSV")
			return err
		}
		log.Info().Str("path", exportCSV).Int("entries", len(file.Entries)).Msg("Wrote CSV export")
	}
	if exportXLSX != "" {
		if err := catalog.SaveXLSX(exportXLSX, file.Entries); err != nil {
			log.Error().Err(err).Str("path", exportXLSX).Msg("Failed to write XLSX")
			return err
		}
		log.Info().Str("path", exportXLSX).Int("entries", len(file.Entries)).Msg("Wrote XLSX export")
	}
	return nil
}
