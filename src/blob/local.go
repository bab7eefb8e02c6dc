package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"stock-backend/src/helpers"
	"stock-backend/src/logger"
)

// LocalBlobStore serves blobs from a directory. Used for development and tests.
type LocalBlobStore struct {
	Root   string
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewLocalBlobStore(root string, log *logger.Logger) (*LocalBlobStore, error) {
	if root == "" {
		return nil, helpers.NewConfigurationError("local blob store", fmt.Errorf("blob.source_dir is empty"))
	}
	return &LocalBlobStore{Root: root, Logger: log.Named("LocalBlob")}, nil
}

// -----------------------------------------------------------------------------

func (s *LocalBlobStore) DownloadFile(ctx context.Context, blobName, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.Open(filepath.Join(s.Root, filepath.Clean("/"+blobName)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", blobName, helpers.ErrBlobNotFound)
		}
		return err
	}
	defer src.Close()

	err = writeReplace(destPath, func(f *os.File) error {
		_, err := io.Copy(f, src)
		return err
	})
	if err != nil {
		return err
	}

	s.Logger.Debug("Copied %s to %s", blobName, destPath)
	return nil
}
