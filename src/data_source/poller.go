package datasource

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"
	"stock-backend/src/utils"
)

// -----------------------------------------------------------------------------

// PollResult summarises one poll run.
type PollResult struct {
	Skipped   bool
	Succeeded []string
	Failed    map[string]error
}

// -----------------------------------------------------------------------------

// Poller fetches every configured symbol once per run and appends successful
// snapshots to the cache. A failure for one symbol never affects another.
type Poller struct {
	Source      interfaces.IQuoteSource
	Gate        interfaces.IMarketGate
	Cache       *utils.QuoteCache
	Archive     interfaces.IQuoteArchive // optional
	Exchange    interfaces.IDataExchanger
	Symbols     []string
	Concurrency int
	Logger      *logger.Logger
	Now         func() time.Time

	runMu      sync.Mutex
	lastUpdate atomic.Int64
}

// -----------------------------------------------------------------------------

func NewPoller(
	cfg *models.MConfig,
	source interfaces.IQuoteSource,
	gate interfaces.IMarketGate,
	cache *utils.QuoteCache,
	archive interfaces.IQuoteArchive,
	exchange interfaces.IDataExchanger,
	log *logger.Logger,
) *Poller {
	concurrency := cfg.Network.ConcurrentRequests
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Poller{
		Source:      source,
		Gate:        gate,
		Cache:       cache,
		Archive:     archive,
		Exchange:    exchange,
		Symbols:     append([]string(nil), cfg.DataSource.Symbols...),
		Concurrency: concurrency,
		Logger:      log.Named("Poller"),
		Now:         time.Now,
	}
}

// -----------------------------------------------------------------------------

type fetchOutcome struct {
	snap models.MQuoteSnapshot
	err  error
}

// -----------------------------------------------------------------------------

// Poll runs one polling pass. Runs are serialised.
func (p *Poller) Poll(ctx context.Context) PollResult {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	result := PollResult{Failed: make(map[string]error)}

	now := p.Now()
	if !p.Gate.IsOpen(now) {
		p.Logger.Info("Market closed at %s, skipping poll", now.Format(time.RFC3339))
		result.Skipped = true
		return result
	}

	outcomes := p.fetchAll(ctx)

	fetchedAt := p.Now().Unix()
	updates := make(map[string][]models.MQuoteSnapshot)
	var records []models.MQuoteRecord

	// Append in configured order so the cache is deterministic.
	for i, symbol := range p.Symbols {
		out := outcomes[i]
		if out.err != nil {
			p.Logger.Error("Error fetching %s: %v", symbol, out.err)
			result.Failed[symbol] = out.err
			continue
		}
		p.Cache.Append(symbol, out.snap)
		result.Succeeded = append(result.Succeeded, symbol)
		updates[symbol] = []models.MQuoteSnapshot{out.snap}
		records = append(records, models.MQuoteRecord{Symbol: symbol, Snapshot: out.snap, FetchedAt: fetchedAt})
	}

	p.Logger.Info("%s: fetched %d/%d symbols successfully", p.Source.Name(), len(result.Succeeded), len(p.Symbols))

	if len(records) == 0 {
		return result
	}
	p.lastUpdate.Store(fetchedAt)

	if p.Archive != nil {
		if err := p.Archive.SaveQuotes(records); err != nil {
			p.Logger.Error("Failed to archive %d quotes: %v", len(records), err)
		}
	}

	if p.Exchange != nil {
		p.Exchange.Broadcast(&models.MLatestData{
			Type:      models.MessageUpdate,
			Quotes:    updates,
			Timestamp: fetchedAt,
		})
	}

	return result
}

// -----------------------------------------------------------------------------

// fetchAll queries every symbol with at most Concurrency requests in flight.
func (p *Poller) fetchAll(ctx context.Context) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(p.Symbols))

	sem := make(chan struct{}, p.Concurrency)
	var wg sync.WaitGroup

	for i, symbol := range p.Symbols {
		wg.Add(1)
		go func(idx int, sym string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcomes[idx] = p.fetchOne(ctx, sym)
		}(i, symbol)
	}

	wg.Wait()
	return outcomes
}

// -----------------------------------------------------------------------------

func (p *Poller) fetchOne(ctx context.Context, symbol string) (out fetchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = fetchOutcome{err: fmt.Errorf("panic fetching %s: %v", symbol, r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return fetchOutcome{err: err}
	}

	snap, err := p.Source.FetchQuote(ctx, symbol)
	return fetchOutcome{snap: snap, err: err}
}

// -----------------------------------------------------------------------------

// Reset clears the whole cache. Scheduled once a day.
func (p *Poller) Reset() {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	count := p.Cache.SymbolCount()
	p.Cache.Reset()
	p.Logger.Info("Quote cache reset (%d symbols cleared)", count)

	if p.Exchange != nil {
		p.Exchange.Broadcast(&models.MLatestData{
			Type:      models.MessageReset,
			Quotes:    map[string][]models.MQuoteSnapshot{},
			Timestamp: p.Now().Unix(),
		})
	}
}

// -----------------------------------------------------------------------------

// LastUpdate is the unix time of the last run that appended anything.
func (p *Poller) LastUpdate() int64 {
	return p.lastUpdate.Load()
}
