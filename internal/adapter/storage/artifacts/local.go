package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore implements ports.ArtifactStore on the filesystem, one directory
// per receipt under the configured root.
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// Write persists one artifact file and returns its path.
func (s *LocalStore) Write(receiptID, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.root, receiptID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", filename, err)
	}
	return path, nil
}

// Read returns a previously written artifact's bytes.
func (s *LocalStore) Read(receiptID, filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, receiptID, filename))
	if err != nil {
		return nil, fmt.Errorf("reading artifact %s: %w", filename, err)
	}
	return data, nil
}

// NoopUploader implements ports.BundleUploader for local-only evidence
// storage: bundles stay on disk and no storage identifier is issued.
type NoopUploader struct{}

// Upload is a no-op in local mode.
func (NoopUploader) Upload(ctx context.Context, localPath string) (string, error) {
	return "", nil
}
