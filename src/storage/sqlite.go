package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"stock-backend/src/helpers"
	"stock-backend/src/logger"
	"stock-backend/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

type AsyncSQLiteDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAsyncSQLiteDB(cfg *models.MConfig, log *logger.Logger) *AsyncSQLiteDB {
	return &AsyncSQLiteDB{
		Config: cfg,
		Logger: log.Named("SQLiteArchive"),
	}
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Initialize() error {
	dsn := d.Config.Storage.DBPath
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return helpers.NewDatabaseError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return helpers.NewDatabaseError("open sqlite", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return helpers.NewDatabaseError("ping sqlite", err)
	}

	// One writer; the poller is the only producer.
	db.SetMaxOpenConns(1)
	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) createTables() error {
	// SQLite types: INTEGER for int64, REAL for float64, TEXT for string
	query := `
		CREATE TABLE IF NOT EXISTS quote_snapshots (
			symbol TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			price REAL,
			high REAL,
			low REAL,
			open REAL,
			previous_close REAL,
			fetched_at INTEGER,
			PRIMARY KEY (symbol, timestamp)
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return helpers.NewDatabaseError("create quote_snapshots", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) SaveQuotes(records []models.MQuoteRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return helpers.NewDatabaseError("begin", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO quote_snapshots (symbol, timestamp, price, high, low, open, previous_close, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (symbol, timestamp) DO NOTHING
	`)
	if err != nil {
		return helpers.NewDatabaseError("prepare insert", err)
	}
	defer stmt.Close()

	for _, r := range records {
		s := r.Snapshot
		if _, err := stmt.Exec(r.Symbol, s.Timestamp, s.Price, s.High, s.Low, s.Open, s.PreviousClose, r.FetchedAt); err != nil {
			return helpers.NewDatabaseError(fmt.Sprintf("insert %s", r.Symbol), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return helpers.NewDatabaseError("commit", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

// CountQuotes returns the number of archived rows for a symbol.
func (d *AsyncSQLiteDB) CountQuotes(symbol string) (int, error) {
	var n int
	err := d.DB.QueryRow(`SELECT COUNT(*) FROM quote_snapshots WHERE symbol = ?`, symbol).Scan(&n)
	return n, err
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
