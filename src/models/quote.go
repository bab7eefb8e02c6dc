package models

// MQuoteSnapshot is one successful quote fetch for a symbol.
type MQuoteSnapshot struct {
	Price         float64 `json:"price"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previous_close"`
	Timestamp     int64   `json:"timestamp"`
}

// MQuoteRecord is a snapshot tagged with its symbol, used by the archive.
type MQuoteRecord struct {
	Symbol    string         `json:"symbol"`
	Snapshot  MQuoteSnapshot `json:"snapshot"`
	FetchedAt int64          `json:"fetched_at"`
}
