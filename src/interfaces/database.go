package interfaces

import "stock-backend/src/models"

//go:generate mockgen -package=mocks -destination=../mocks/mock_database.go -source=database.go IQuoteArchive

// -----------------------------------------------------------------------------
// IQuoteArchive defines the contract for persisting fetched quotes.
// -----------------------------------------------------------------------------

type IQuoteArchive interface {

	// -----------------------------------------------------------------------------

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// SaveQuotes inserts a batch of quote records. Duplicates are ignored.
	SaveQuotes(records []models.MQuoteRecord) error

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
