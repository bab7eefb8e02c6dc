package utils

import (
	"sync"

	"stock-backend/src/models"
)

// -----------------------------------------------------------------------------
// QuoteCache holds the day's snapshots per symbol, oldest first.
// -----------------------------------------------------------------------------

type QuoteCache struct {
	streams map[string][]models.MQuoteSnapshot
	mu      sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewQuoteCache() *QuoteCache {
	return &QuoteCache{
		streams: make(map[string][]models.MQuoteSnapshot),
	}
}

// -----------------------------------------------------------------------------

// Append adds a snapshot to the end of the symbol's sequence, creating it if absent.
func (qc *QuoteCache) Append(symbol string, snap models.MQuoteSnapshot) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	qc.streams[symbol] = append(qc.streams[symbol], snap)
}

// -----------------------------------------------------------------------------

// All returns a copy of every sequence. Callers may modify it freely.
func (qc *QuoteCache) All() map[string][]models.MQuoteSnapshot {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	result := make(map[string][]models.MQuoteSnapshot, len(qc.streams))
	for sym, list := range qc.streams {
		result[sym] = append([]models.MQuoteSnapshot(nil), list...)
	}
	return result
}

// -----------------------------------------------------------------------------

// Get returns a copy of the symbol's sequence and whether it exists.
func (qc *QuoteCache) Get(symbol string) ([]models.MQuoteSnapshot, bool) {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	list, ok := qc.streams[symbol]
	if !ok {
		return nil, false
	}
	return append([]models.MQuoteSnapshot(nil), list...), true
}

// -----------------------------------------------------------------------------

// Latest returns the most recent snapshot for a symbol.
func (qc *QuoteCache) Latest(symbol string) (models.MQuoteSnapshot, bool) {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	list := qc.streams[symbol]
	if len(list) == 0 {
		return models.MQuoteSnapshot{}, false
	}
	return list[len(list)-1], true
}

// -----------------------------------------------------------------------------

// Reset drops every sequence.
func (qc *QuoteCache) Reset() {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	qc.streams = make(map[string][]models.MQuoteSnapshot)
}

// -----------------------------------------------------------------------------

// HasSymbol checks if symbol exists
func (qc *QuoteCache) HasSymbol(symbol string) bool {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	_, ok := qc.streams[symbol]
	return ok
}

// -----------------------------------------------------------------------------

// SymbolCount returns number of symbols with data
func (qc *QuoteCache) SymbolCount() int {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	return len(qc.streams)
}
