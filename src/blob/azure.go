package blob

import (
	"context"
	"fmt"
	"os"
	"time"

	"stock-backend/src/helpers"
	"stock-backend/src/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureBlobStore downloads blobs from one Azure Storage container.
// Each download is a single attempt bounded by Timeout.
type AzureBlobStore struct {
	Client    *azblob.Client
	Container string
	Timeout   time.Duration
	Logger    *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAzureBlobStore(connectionString, container string, timeout time.Duration, log *logger.Logger) (*AzureBlobStore, error) {
	if connectionString == "" {
		return nil, helpers.NewConfigurationError("azure blob store", fmt.Errorf("AZURE_STORAGE_CONNECTION_STRING is not set"))
	}
	if timeout <= 0 {
		return nil, helpers.NewConfigurationError("azure blob store", fmt.Errorf("timeout must be greater than 0"))
	}

	// MaxRetries < 0 turns the SDK's retry policy off.
	opts := &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1, TryTimeout: timeout},
		},
	}
	client, err := azblob.NewClientFromConnectionString(connectionString, opts)
	if err != nil {
		return nil, helpers.NewConfigurationError("azure blob client", err)
	}

	return &AzureBlobStore{
		Client:    client,
		Container: container,
		Timeout:   timeout,
		Logger:    log.Named("AzureBlob"),
	}, nil
}

// -----------------------------------------------------------------------------

func (s *AzureBlobStore) DownloadFile(ctx context.Context, blobName, destPath string) error {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	err := writeReplace(destPath, func(f *os.File) error {
		n, err := s.Client.DownloadFile(ctx, s.Container, blobName, f, nil)
		if err != nil {
			return err
		}
		s.Logger.Debug("Downloaded %s/%s (%d bytes)", s.Container, blobName, n)
		return nil
	})
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return fmt.Errorf("%s/%s: %w", s.Container, blobName, helpers.ErrBlobNotFound)
		}
		return helpers.NewNetworkError(fmt.Sprintf("download %s/%s", s.Container, blobName), err)
	}

	s.Logger.Info("Downloaded %s to %s", blobName, destPath)
	return nil
}
