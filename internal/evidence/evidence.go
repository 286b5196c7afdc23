// Package evidence defines the units of data tracked through a task: the
// input processed by an external tool and the artifacts it produces.
package evidence

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/berggren/turbinia/internal/archive"
)

const (
	// TypeRawDisk is a raw disk image or a plain file used as task input.
	TypeRawDisk = "RawDisk"
	// TypeBulkExtractorOutput is the directory of artifacts written by a
	// bulk_extractor run.
	TypeBulkExtractorOutput = "BulkExtractorOutput"
)

// Evidence is a file or directory on disk plus the metadata tracked for it.
type Evidence struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	// LocalPath points at the evidence on the local file system.
	LocalPath string `json:"local_path"`

	// TextData holds a rendered human-readable report attached after
	// processing, when one exists.
	TextData string `json:"text_data,omitempty"`
}

// New creates an Evidence of the given type rooted at localPath.
func New(evidenceType, localPath string) *Evidence {
	return &Evidence{
		ID:        uuid.New().String(),
		Type:      evidenceType,
		LocalPath: localPath,
	}
}

// NewBulkExtractorOutput creates the output evidence for a bulk_extractor
// run. The local path is assigned by the task before the tool is invoked.
func NewBulkExtractorOutput() *Evidence {
	return New(TypeBulkExtractorOutput, "")
}

// Validate checks that the evidence references an existing local path.
func (e *Evidence) Validate() error {
	if e.LocalPath == "" {
		return fmt.Errorf("evidence %s has no local path", e.ID)
	}
	if _, err := os.Stat(e.LocalPath); err != nil {
		return fmt.Errorf("evidence path %q is not accessible: %w", e.LocalPath, err)
	}
	return nil
}

// Compress archives the evidence directory into a single .tar.gz file and
// points the evidence at the archive.
func (e *Evidence) Compress() error {
	archivePath, err := archive.CompressDirectory(e.LocalPath)
	if err != nil {
		return fmt.Errorf("failed to compress evidence %s: %w", e.ID, err)
	}
	e.LocalPath = archivePath
	return nil
}
