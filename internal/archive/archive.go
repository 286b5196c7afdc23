// Package archive packs task output directories into single retrievable
// archives.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CompressDirectory writes a gzip compressed tarball of sourceDir next to it,
// named <sourceDir>.tar.gz, and returns the archive path. Entries are stored
// relative to the directory being archived.
func CompressDirectory(sourceDir string) (string, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return "", fmt.Errorf("failed to stat %q: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %q is not a directory", sourceDir)
	}

	archivePath := filepath.Clean(sourceDir) + ".tar.gz"
	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive %q: %w", archivePath, err)
	}
	defer out.Close()

	gzWriter := gzip.NewWriter(out)
	defer gzWriter.Close()
	tarWriter := tar.NewWriter(gzWriter)
	defer tarWriter.Close()

	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access %q: %w", path, err)
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(fileInfo, "")
		if err != nil {
			return fmt.Errorf("failed to build tar header for %q: %w", path, err)
		}
		header.Name = filepath.ToSlash(relPath)

		if err := tarWriter.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write tar header for %q: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", path, err)
		}
		defer file.Close()

		if _, err := io.Copy(tarWriter, file); err != nil {
			return fmt.Errorf("failed to archive %q: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return archivePath, nil
}
