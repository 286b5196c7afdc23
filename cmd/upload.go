package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berggren/turbinia/internal/evidence"
	"github.com/berggren/turbinia/internal/uploader"
	"github.com/berggren/turbinia/pkg/shared/files"
	"github.com/berggren/turbinia/pkg/shared/logger"
)

// UploadOptions holds the arguments for the upload command.
type UploadOptions struct {
	Input  string
	Bucket string
	Region string
}

var uploadOptions UploadOptions

// uploadCmd uploads a previously produced evidence archive to S3.
var uploadCmd = &cobra.Command{
	Use:   "upload -i /path/to/evidence.tar.gz [-b BUCKET] [-r REGION]",
	Short: "Upload an evidence archive to S3",
	Example: `  # Upload a compressed bulk_extractor output
  turbinia upload -i /var/lib/turbinia/output/disk.dd.tar.gz -b evidence-archive -r eu-west-2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logger.NewLogger(AppConfig, "core-upload")

		if err := files.ValidatePath(uploadOptions.Input); err != nil {
			return err
		}

		bucket := uploadOptions.Bucket
		if bucket == "" {
			bucket = AppConfig.Uploader.Bucket
		}
		region := uploadOptions.Region
		if region == "" {
			region = AppConfig.Uploader.Region
		}
		if bucket == "" {
			return fmt.Errorf("no bucket given and none configured")
		}

		ev := evidence.New(evidence.TypeBulkExtractorOutput, uploadOptions.Input)
		location, err := uploader.New(bucket, region, logger).Upload(ev)
		if err != nil {
			return err
		}

		logger.Info("upload command completed successfully", "location", location)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVarP(&uploadOptions.Input, "input", "i", "", "evidence archive filepath")
	uploadCmd.Flags().StringVarP(&uploadOptions.Bucket, "bucket", "b", "", "S3 bucket name")
	uploadCmd.Flags().StringVarP(&uploadOptions.Region, "region", "r", "", "AWS region")
}
