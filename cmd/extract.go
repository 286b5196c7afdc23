package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berggren/turbinia/internal/bulkextractor"
	"github.com/berggren/turbinia/internal/evidence"
	"github.com/berggren/turbinia/internal/notify"
	"github.com/berggren/turbinia/internal/uploader"
	"github.com/berggren/turbinia/pkg/shared/files"
	"github.com/berggren/turbinia/pkg/shared/logger"
)

// ExtractOptions holds the arguments for the extract command.
type ExtractOptions struct {
	OutputRoot string
	Upload     bool
}

var (
	extractOptions      ExtractOptions
	exampleExtractUsage = `  # Run bulk_extractor against a disk image
  turbinia extract /evidence/disk.dd

  # Run with a dedicated output root
  turbinia extract --output /var/lib/turbinia/output /evidence/disk.dd

  # Run and upload the compressed output to the configured S3 bucket
  turbinia extract --upload /evidence/disk.dd`
)

// extractCmd runs the bulk_extractor task against a single piece of evidence.
var extractCmd = &cobra.Command{
	Use:                   "extract [--output/-o PATH] [--upload] EVIDENCE_PATH",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleExtractUsage,
	Short:                 "Run bulk_extractor against evidence and report the findings",
	Args:                  cobra.ExactArgs(1),
	RunE:                  runExtractCommand,
}

func runExtractCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-extract")

	outputRoot := extractOptions.OutputRoot
	if outputRoot == "" {
		outputRoot = AppConfig.BulkExtractor.OutputRoot
	}
	outputRoot, err := files.ExpandPath(outputRoot)
	if err != nil {
		logger.Error("failed to resolve output root", "error", err)
		return err
	}
	if err := files.CreateFolderIfNotExists(outputRoot); err != nil {
		logger.Error("failed to prepare output root", "error", err)
		return err
	}

	ev := evidence.New(evidence.TypeRawDisk, args[0])
	extractTask := bulkextractor.New(
		AppConfig.BulkExtractor.Binary,
		outputRoot,
		AppConfig.BulkExtractor.AdditionalArgs,
		logger,
	)

	res := extractTask.Run(ev, extractTask.NewResult())
	if res.ReportData != "" {
		fmt.Println(res.ReportData)
	}

	if AppConfig.Server.URL != "" {
		client := notify.New(AppConfig.Server.URL, AppConfig.Server.Token)
		if err := client.PublishResult(res); err != nil {
			logger.Error("failed to publish task result", "error", err)
		}
	}

	if extractOptions.Upload && AppConfig.Uploader.Bucket != "" {
		up := uploader.New(AppConfig.Uploader.Bucket, AppConfig.Uploader.Region, logger)
		for _, produced := range res.Evidence {
			if _, err := up.Upload(produced); err != nil {
				logger.Error("failed to upload evidence", "evidence", produced.ID, "error", err)
			}
		}
	}

	if !res.Successful {
		return fmt.Errorf("bulk extractor task failed: %s", res.Status)
	}
	logger.Info("extract command completed successfully", "status", res.Status)
	return nil
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractOptions.OutputRoot, "output", "o", "", "root folder for task output")
	extractCmd.Flags().BoolVar(&extractOptions.Upload, "upload", false, "upload produced evidence to the configured bucket")
}
