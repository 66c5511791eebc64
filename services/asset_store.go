package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AssetStore menyimpan foto hasil upload dan mengembalikan URL yang bisa disajikan.
type AssetStore interface {
	// SavePhoto menyimpan bytes foto dan mengembalikan URL-nya.
	SavePhoto(filename string, data []byte) (string, error)
	// PlaceholderURL dipakai saat tidak ada foto sebelumnya untuk ruangan.
	PlaceholderURL() string
}

// LocalAssetStore menyimpan foto di disk lokal di bawah baseDir,
// disajikan oleh router lewat prefix /uploads.
type LocalAssetStore struct {
	baseDir   string
	urlPrefix string
}

func NewLocalAssetStore(baseDir string) *LocalAssetStore {
	if baseDir == "" {
		baseDir = filepath.Join("public", "uploads")
	}
	return &LocalAssetStore{
		baseDir:   baseDir,
		urlPrefix: "/uploads",
	}
}

func (s *LocalAssetStore) SavePhoto(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

func (s *LocalAssetStore) PlaceholderURL() string {
	return s.urlPrefix + "/before_placeholder.jpg"
}
