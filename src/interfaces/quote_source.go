package interfaces

import (
	"context"
	"time"

	"stock-backend/src/models"
)

//go:generate mockgen -package=mocks -destination=../mocks/mock_quote_source.go -source=quote_source.go IQuoteSource

// -----------------------------------------------------------------------------
// IQuoteSource fetches the current quote for one symbol.
// -----------------------------------------------------------------------------

type IQuoteSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchQuote returns a complete snapshot or an error. It never returns a partial snapshot.
	FetchQuote(ctx context.Context, symbol string) (models.MQuoteSnapshot, error)
}

// -----------------------------------------------------------------------------
// IMarketGate reports whether polling is allowed at a given instant.
// -----------------------------------------------------------------------------

type IMarketGate interface {
	IsOpen(now time.Time) bool
}
