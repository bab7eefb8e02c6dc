package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"stock-backend/src/helpers"
	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"
)

// FinnhubSource fetches quotes from the Finnhub /quote endpoint.
type FinnhubSource struct {
	SourceName string
	BaseURL    string
	APIKey     string
	Network    interfaces.INetworkManager
	Logger     *logger.Logger
}

// -----------------------------------------------------------------------------

func NewFinnhubSource(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *FinnhubSource {
	return &FinnhubSource{
		SourceName: cfg.DataSource.Name,
		BaseURL:    strings.TrimRight(cfg.DataSource.BaseURL, "/"),
		APIKey:     cfg.DataSource.APIKey,
		Network:    netMgr,
		Logger:     log.Named("FinnhubSource-" + cfg.DataSource.Name),
	}
}

// -----------------------------------------------------------------------------

func (s *FinnhubSource) Name() string {
	return s.SourceName
}

// -----------------------------------------------------------------------------

// quoteResponse mirrors the Finnhub payload. Pointers detect missing keys.
type quoteResponse struct {
	Current       *float64 `json:"c"`
	High          *float64 `json:"h"`
	Low           *float64 `json:"l"`
	Open          *float64 `json:"o"`
	PreviousClose *float64 `json:"pc"`
	Timestamp     *int64   `json:"t"`
}

// -----------------------------------------------------------------------------

// FetchQuote performs exactly one request for symbol.
func (s *FinnhubSource) FetchQuote(ctx context.Context, symbol string) (models.MQuoteSnapshot, error) {
	params := map[string]string{
		"symbol": symbol,
		"token":  s.APIKey,
	}

	body, err := s.Network.Get(ctx, s.BaseURL+"/quote", params)
	if err != nil {
		return models.MQuoteSnapshot{}, fmt.Errorf("network error for %s: %w", symbol, err)
	}

	return ParseQuote(symbol, body)
}

// -----------------------------------------------------------------------------

// ParseQuote converts a Finnhub body into a snapshot. Any missing field or a
// zero timestamp (Finnhub's reply for unknown symbols) is an error.
func ParseQuote(symbol string, body []byte) (models.MQuoteSnapshot, error) {
	var resp quoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.MQuoteSnapshot{}, helpers.NewDataSourceError(fmt.Sprintf("malformed quote for %s", symbol), err)
	}

	var missing []string
	if resp.Current == nil {
		missing = append(missing, "c")
	}
	if resp.High == nil {
		missing = append(missing, "h")
	}
	if resp.Low == nil {
		missing = append(missing, "l")
	}
	if resp.Open == nil {
		missing = append(missing, "o")
	}
	if resp.PreviousClose == nil {
		missing = append(missing, "pc")
	}
	if resp.Timestamp == nil {
		missing = append(missing, "t")
	}
	if len(missing) > 0 {
		return models.MQuoteSnapshot{}, helpers.NewDataSourceError(
			fmt.Sprintf("malformed quote for %s", symbol),
			fmt.Errorf("missing fields %s", strings.Join(missing, ",")),
		)
	}

	if *resp.Timestamp == 0 {
		return models.MQuoteSnapshot{}, helpers.NewDataSourceError(fmt.Sprintf("no quote for %s", symbol), helpers.ErrEmptyQuote)
	}

	return models.MQuoteSnapshot{
		Price:         *resp.Current,
		High:          *resp.High,
		Low:           *resp.Low,
		Open:          *resp.Open,
		PreviousClose: *resp.PreviousClose,
		Timestamp:     *resp.Timestamp,
	}, nil
}
