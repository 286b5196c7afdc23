package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berggren/turbinia/internal/bulkextractor"
	"github.com/berggren/turbinia/internal/sarif"
	"github.com/berggren/turbinia/pkg/shared/logger"
)

// ExportOptions holds the arguments for the export command.
type ExportOptions struct {
	Input  string
	Output string
}

var exportOptions ExportOptions

var execExampleExport = `  # Convert a bulk_extractor output directory to a SARIF report
  turbinia export --input /var/lib/turbinia/output/disk.dd --output /tmp/disk.sarif`

// exportCmd converts scanner findings from a bulk_extractor run into SARIF.
var exportCmd = &cobra.Command{
	Use:     "export -i /path/to/output/dir -o /path/to/report.sarif",
	Short:   "Export bulk_extractor findings as a SARIF report",
	Example: execExampleExport,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logger.NewLogger(AppConfig, "core-export")

		if exportOptions.Input == "" || exportOptions.Output == "" {
			return fmt.Errorf("both --input and --output are required")
		}

		parser := bulkextractor.NewParser(logger)
		findings, err := parser.Findings(exportOptions.Input)
		if err != nil {
			logger.Error("failed to read findings", "error", err)
			return err
		}

		report, err := sarif.FromFindings(findings)
		if err != nil {
			return err
		}
		if err := sarif.WriteFile(report, exportOptions.Output); err != nil {
			return err
		}

		logger.Info("SARIF report written", "path", exportOptions.Output, "findings", len(findings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOptions.Input, "input", "i", "", "bulk_extractor output directory")
	exportCmd.Flags().StringVarP(&exportOptions.Output, "output", "o", "", "SARIF report filepath")
}
