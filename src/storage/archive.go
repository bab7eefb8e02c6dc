package storage

import (
	"fmt"

	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"
)

// NoopArchive discards quotes. Used when storage.db_type is "none".
type NoopArchive struct{}

func (NoopArchive) Initialize() error { return nil }
func (NoopArchive) SaveQuotes(_ []models.MQuoteRecord) error { return nil }
func (NoopArchive) Close() error { return nil }

// -----------------------------------------------------------------------------

// NewArchive picks the archive implementation for cfg.Storage.DBType.
func NewArchive(cfg *models.MConfig, log *logger.Logger) (interfaces.IQuoteArchive, error) {
	switch cfg.Storage.DBType {
	case "", "none":
		return NoopArchive{}, nil
	case "sqlite":
		return NewAsyncSQLiteDB(cfg, log), nil
	case "postgres":
		return NewPostgresDB(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown database type '%s'", cfg.Storage.DBType)
	}
}
