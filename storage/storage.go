package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

const (
	filesDir     = "FILES"
	templatesDir = "DOC_TEMPLATES"
)

// MediaStore is the path-addressed blob store for report images and country
// document templates, rooted at MEDIA_ROOT. Images live under
// FILES/<report_id>/<filename>, templates at
// DOC_TEMPLATES/<country>_template.docx.
type MediaStore struct {
	root string
}

// NewMediaStore creates the store and ensures the root directory exists.
func NewMediaStore(root string) (*MediaStore, error) {
	if root == "" {
		return nil, fmt.Errorf("media root must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root %s: %w", root, err)
	}
	return &MediaStore{root: root}, nil
}

// ImagePath returns the relative storage path for a report image.
func (s *MediaStore) ImagePath(reportID uint, filename string) string {
	return filepath.Join(filesDir, strconv.FormatUint(uint64(reportID), 10), filepath.Base(filename))
}

// TemplatePath returns the relative storage path for a country's document
// template. One physical file per country at a time.
func (s *MediaStore) TemplatePath(countryName string) string {
	return filepath.Join(templatesDir, countryName+"_template.docx")
}

// SaveImage writes an image under the report's directory and returns the
// stored relative path.
func (s *MediaStore) SaveImage(reportID uint, filename string, src io.Reader) (string, error) {
	relPath := s.ImagePath(reportID, filename)
	if err := s.write(relPath, src); err != nil {
		return "", err
	}
	return relPath, nil
}

// RemoveImage deletes a stored image. A missing file is tolerated silently:
// image cleanup is best effort.
func (s *MediaStore) RemoveImage(relPath string) {
	if relPath == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.root, relPath))
}

// RemoveReportFiles deletes the whole FILES/<report_id> directory with every
// image in it, ignoring absence and any other error.
func (s *MediaStore) RemoveReportFiles(reportID uint) {
	_ = os.RemoveAll(filepath.Join(s.root, filesDir, strconv.FormatUint(uint64(reportID), 10)))
}

// SaveTemplate writes a country's template, overwriting any existing file at
// that path rather than generating a unique name.
func (s *MediaStore) SaveTemplate(countryName string, src io.Reader) (string, error) {
	relPath := s.TemplatePath(countryName)
	if err := os.Remove(filepath.Join(s.root, relPath)); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to replace template %s: %w", relPath, err)
	}
	if err := s.write(relPath, src); err != nil {
		return "", err
	}
	return relPath, nil
}

// RemoveTemplate deletes a country's template file. Unlike image cleanup, a
// missing file propagates as an error.
func (s *MediaStore) RemoveTemplate(relPath string) error {
	if err := os.Remove(filepath.Join(s.root, relPath)); err != nil {
		return fmt.Errorf("failed to remove template %s: %w", relPath, err)
	}
	return nil
}

// Exists reports whether a stored file is present.
func (s *MediaStore) Exists(relPath string) bool {
	_, err := os.Stat(filepath.Join(s.root, relPath))
	return err == nil
}

func (s *MediaStore) write(relPath string, src io.Reader) error {
	fullPath := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}
	dst, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", relPath, err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}
