package vector

import (
	"encoding/json"
	"fmt"
	"os"

	"stock-backend/src/models"

	"github.com/parquet-go/parquet-go"
)

// VectorRecord is the on-disk schema of the index file.
type VectorRecord struct {
	ID     string    `parquet:"id"`
	Vector []float32 `parquet:"vector"`
}

// -----------------------------------------------------------------------------

// LoadFlatIndex reads the parquet vectors and the JSON docstore.
func LoadFlatIndex(indexPath, metadataPath string) (*FlatIndex, error) {
	rows, err := parquet.ReadFile[VectorRecord](indexPath)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", indexPath, err)
	}

	raw, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", metadataPath, err)
	}
	var store models.MDocStore
	if err := json.Unmarshal(raw, &store); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", metadataPath, err)
	}

	return NewFlatIndex(store, rows)
}

// -----------------------------------------------------------------------------

// WriteIndexFiles writes an index pair that LoadFlatIndex can read back.
func WriteIndexFiles(indexPath, metadataPath string, store models.MDocStore, rows []VectorRecord) error {
	if err := parquet.WriteFile(indexPath, rows); err != nil {
		return fmt.Errorf("write index %s: %w", indexPath, err)
	}

	raw, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(metadataPath, raw, 0o644); err != nil {
		return fmt.Errorf("write metadata %s: %w", metadataPath, err)
	}
	return nil
}
