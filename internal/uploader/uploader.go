// Package uploader ships archived evidence to S3 for long term retention.
package uploader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/hashicorp/go-hclog"

	"github.com/berggren/turbinia/internal/evidence"
)

// Uploader uploads evidence archives to an S3 bucket.
type Uploader struct {
	bucket string
	region string
	logger hclog.Logger
}

// New creates an Uploader for the given bucket and region.
func New(bucket, region string, logger hclog.Logger) *Uploader {
	return &Uploader{
		bucket: bucket,
		region: region,
		logger: logger,
	}
}

// ObjectKey derives the S3 object key for an evidence artifact.
func ObjectKey(ev *evidence.Evidence) string {
	return filepath.ToSlash(filepath.Join(ev.Type, ev.ID, filepath.Base(ev.LocalPath)))
}

// Upload sends the evidence file to the bucket and returns its location.
func (u *Uploader) Upload(ev *evidence.Evidence) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(u.region),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create AWS session: %w", err)
	}

	file, err := os.Open(ev.LocalPath)
	if err != nil {
		return "", fmt.Errorf("failed to open evidence file %q: %w", ev.LocalPath, err)
	}
	defer file.Close()

	key := ObjectKey(ev)
	u.logger.Info("uploading evidence", "bucket", u.bucket, "key", key)

	result, err := s3manager.NewUploader(sess).Upload(&s3manager.UploadInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload evidence to s3://%s/%s: %w", u.bucket, key, err)
	}

	u.logger.Info("evidence uploaded", "location", result.Location)
	return result.Location, nil
}
