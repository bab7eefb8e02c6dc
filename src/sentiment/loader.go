package sentiment

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"stock-backend/src/helpers"
	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"
	"stock-backend/src/vector"
)

// IndexLoader downloads the index artifacts and publishes them through the
// holder. Reloads are serialised; a failed reload leaves the current index
// in place.
type IndexLoader struct {
	Store    interfaces.IBlobStore
	Holder   *vector.IndexHolder
	Embedder interfaces.IEmbedder // optional, enables the model check
	Blob     models.MBlobConfig
	Logger   *logger.Logger

	// OnLoaded is called after every load attempt with the holder state.
	OnLoaded func(loaded bool)

	mu sync.Mutex
}

// -----------------------------------------------------------------------------

func NewIndexLoader(
	cfg *models.MConfig,
	store interfaces.IBlobStore,
	holder *vector.IndexHolder,
	embedder interfaces.IEmbedder,
	log *logger.Logger,
) *IndexLoader {
	return &IndexLoader{
		Store:    store,
		Holder:   holder,
		Embedder: embedder,
		Blob:     cfg.Blob,
		Logger:   log.Named("IndexLoader"),
	}
}

// -----------------------------------------------------------------------------

func (l *IndexLoader) localPath(blobName string) string {
	return filepath.Join(l.Blob.LocalDir, filepath.Base(blobName))
}

// GraphPath is where the sentiment graph artifact is cached.
func (l *IndexLoader) GraphPath() string {
	return l.localPath(l.Blob.GraphBlob)
}

// -----------------------------------------------------------------------------

// Load fetches the index and metadata blobs, parses them and swaps the new
// index in.
func (l *IndexLoader) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.load(ctx)
	if l.OnLoaded != nil {
		l.OnLoaded(l.Holder.Loaded())
	}
	return err
}

func (l *IndexLoader) load(ctx context.Context) error {
	indexPath := l.localPath(l.Blob.IndexBlob)
	metaPath := l.localPath(l.Blob.MetadataBlob)

	if err := l.Store.DownloadFile(ctx, l.Blob.IndexBlob, indexPath); err != nil {
		l.Logger.Error("Index download failed: %v", err)
		return helpers.NewIndexError("download "+l.Blob.IndexBlob, err)
	}
	if err := l.Store.DownloadFile(ctx, l.Blob.MetadataBlob, metaPath); err != nil {
		l.Logger.Error("Metadata download failed: %v", err)
		return helpers.NewIndexError("download "+l.Blob.MetadataBlob, err)
	}

	idx, err := vector.LoadFlatIndex(indexPath, metaPath)
	if err != nil {
		l.Logger.Error("Index parse failed: %v", err)
		return helpers.NewIndexError("load index", err)
	}

	if l.Embedder != nil && idx.Model() != "" && idx.Model() != l.Embedder.Model() {
		err := fmt.Errorf("index built with %q, query embedder is %q", idx.Model(), l.Embedder.Model())
		l.Logger.Error("Refusing index: %v", err)
		return helpers.NewIndexError("embedding model mismatch", err)
	}

	l.Holder.Swap(idx)
	l.Logger.Info("Loaded index with %d vectors (dim %d, model %s)", idx.Size(), idx.Dimension(), idx.Model())
	return nil
}

// -----------------------------------------------------------------------------

// LoadGraph refreshes the cached sentiment graph artifact.
func (l *IndexLoader) LoadGraph(ctx context.Context) error {
	if l.Blob.GraphBlob == "" {
		return nil
	}
	if err := l.Store.DownloadFile(ctx, l.Blob.GraphBlob, l.GraphPath()); err != nil {
		l.Logger.Warning("Graph download failed: %v", err)
		return err
	}
	l.Logger.Info("Graph cached at %s", l.GraphPath())
	return nil
}

// -----------------------------------------------------------------------------

func (l *IndexLoader) Loaded() bool {
	return l.Holder.Loaded()
}
