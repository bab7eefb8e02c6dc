package storage

import (
	"database/sql"
	"fmt"

	"stock-backend/src/helpers"
	"stock-backend/src/logger"
	"stock-backend/src/models"

	"github.com/lib/pq"
)

// -----------------------------------------------------------------------------

type PostgresDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Schema string
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresDB(cfg *models.MConfig, log *logger.Logger) *PostgresDB {
	return &PostgresDB{
		Config: cfg,
		Schema: cfg.Storage.Schema,
		Logger: log.Named("PostgresArchive"),
	}
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) table() string {
	return pq.QuoteIdentifier(d.Schema) + `."quote_snapshots"`
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Initialize() error {
	db, err := sql.Open("postgres", d.Config.Storage.DBConnectionString)
	if err != nil {
		return helpers.NewDatabaseError("open postgres", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return helpers.NewDatabaseError("ping postgres", err)
	}

	d.DB = db

	if _, err := d.DB.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pq.QuoteIdentifier(d.Schema))); err != nil {
		return helpers.NewDatabaseError(fmt.Sprintf("create schema %s", d.Schema), err)
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			symbol TEXT NOT NULL,
			timestamp BIGINT NOT NULL,
			price DOUBLE PRECISION,
			high DOUBLE PRECISION,
			low DOUBLE PRECISION,
			open DOUBLE PRECISION,
			previous_close DOUBLE PRECISION,
			fetched_at BIGINT,
			PRIMARY KEY (symbol, timestamp)
		);
	`, d.table())
	if _, err := d.DB.Exec(query); err != nil {
		return helpers.NewDatabaseError("create quote_snapshots", err)
	}

	d.Logger.Info("PostgresDB initialized successfully (Schema: %s)", d.Schema)
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) SaveQuotes(records []models.MQuoteRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return helpers.NewDatabaseError("begin", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO %s (symbol, timestamp, price, high, low, open, previous_close, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (symbol, timestamp) DO NOTHING
	`, d.table())
	stmt, err := tx.Prepare(query)
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

func (d *PostgresDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
