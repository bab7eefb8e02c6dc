package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"
)

// NewBlobStore picks the store for cfg.Blob.Provider.
func NewBlobStore(cfg *models.MConfig, log *logger.Logger) (interfaces.IBlobStore, error) {
	switch cfg.Blob.Provider {
	case "azure":
		return NewAzureBlobStore(cfg.Blob.ConnectionString, cfg.Blob.Container, time.Duration(cfg.Blob.TimeoutSecs)*time.Second, log)
	case "local":
		return NewLocalBlobStore(cfg.Blob.SourceDir, log)
	default:
		return nil, fmt.Errorf("unknown blob provider '%s'", cfg.Blob.Provider)
	}
}

// -----------------------------------------------------------------------------

// writeReplace fills a temp file next to destPath and renames it into place,
// so readers never observe a half written file. On error destPath is untouched.
func writeReplace(destPath string, fill func(f *os.File) error) error {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := fill(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, destPath); err != nil {
		return fmt.Errorf("replace %s: %w", destPath, err)
	}
	return nil
}
