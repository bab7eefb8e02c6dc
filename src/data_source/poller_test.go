package datasource

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-backend/src/logger"
	"stock-backend/src/mocks"
	"stock-backend/src/models"
	"stock-backend/src/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingExchange struct {
	messages []*models.MLatestData
}

func (r *recordingExchange) Broadcast(m *models.MLatestData) { r.messages = append(r.messages, m) }
func (r *recordingExchange) ConnectionCount() int { return 0 }

func newTestPoller(t *testing.T, symbols []string, concurrency int) (*Poller, *mocks.MockIQuoteSource, *mocks.MockIMarketGate, *recordingExchange) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockIQuoteSource(ctrl)
	gate := mocks.NewMockIMarketGate(ctrl)
	source.EXPECT().Name().Return("finnhub").AnyTimes()

	cfg := &models.MConfig{}
	cfg.DataSource.Symbols = symbols
	cfg.Network.ConcurrentRequests = concurrency

	ex := &recordingExchange{}
	p := NewPoller(cfg, source, gate, utils.NewQuoteCache(), nil, ex, logger.NewNopLogger())
	p.Now = func() time.Time { return time.Unix(1700000000, 0) }
	return p, source, gate, ex
}

func TestPollClosedMarketMakesNoCalls(t *testing.T) {
	t.Parallel()

	// Arrange: the gate is closed and FetchQuote must never be called
	p, source, gate, ex := newTestPoller(t, []string{"AAPL", "MSFT"}, 1)
	gate.EXPECT().IsOpen(gomock.Any()).Return(false).Times(1)
	source.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).Times(0)

	// Act
	res := p.Poll(context.Background())

	// Assert
	require.True(t, res.Skipped)
	require.Zero(t, p.Cache.SymbolCount())
	require.Empty(t, ex.messages)
}

func TestPollIsolatesPerSymbolFailures(t *testing.T) {
	t.Parallel()

	// Arrange: MSFT fails, AAPL and TSLA succeed
	p, source, gate, ex := newTestPoller(t, []string{"AAPL", "MSFT", "TSLA"}, 2)
	gate.EXPECT().IsOpen(gomock.Any()).Return(true).Times(1)
	source.EXPECT().FetchQuote(gomock.Any(), "AAPL").Return(models.MQuoteSnapshot{Price: 1, Timestamp: 10}, nil)
	source.EXPECT().FetchQuote(gomock.Any(), "MSFT").Return(models.MQuoteSnapshot{}, errors.New("503"))
	source.EXPECT().FetchQuote(gomock.Any(), "TSLA").Return(models.MQuoteSnapshot{Price: 3, Timestamp: 10}, nil)

	// Act
	res := p.Poll(context.Background())

	// Assert
	require.Equal(t, []string{"AAPL", "TSLA"}, res.Succeeded)
	require.Contains(t, res.Failed, "MSFT")
	require.False(t, p.Cache.HasSymbol("MSFT"))
	aapl, _ := p.Cache.Get("AAPL")
	require.Len(t, aapl, 1)
	require.Len(t, ex.messages, 1)
	require.Equal(t, models.MessageUpdate, ex.messages[0].Type)
	require.NotContains(t, ex.messages[0].Quotes, "MSFT")
	require.EqualValues(t, 1700000000, p.LastUpdate())
}

func TestPollNTimesAppendsN(t *testing.T) {
	t.Parallel()

	p, source, gate, _ := newTestPoller(t, []string{"AAPL"}, 1)
	gate.EXPECT().IsOpen(gomock.Any()).Return(true).Times(4)
	ts := int64(0)
	source.EXPECT().FetchQuote(gomock.Any(), "AAPL").DoAndReturn(func(ctx context.Context, symbol string) (models.MQuoteSnapshot, error) {
		ts++
		return models.MQuoteSnapshot{Price: float64(ts), Timestamp: ts}, nil
	}).Times(4)

	for i := 0; i < 4; i++ {
		p.Poll(context.Background())
	}

	list, ok := p.Cache.Get("AAPL")
	require.True(t, ok)
	require.Len(t, list, 4)
	for i := range list {
		require.EqualValues(t, i+1, list[i].Timestamp)
	}
}

func TestPollRecoversFromSourcePanic(t *testing.T) {
	t.Parallel()

	p, source, gate, _ := newTestPoller(t, []string{"AAPL", "MSFT"}, 1)
	gate.EXPECT().IsOpen(gomock.Any()).Return(true)
	source.EXPECT().FetchQuote(gomock.Any(), "AAPL").DoAndReturn(func(ctx context.Context, symbol string) (models.MQuoteSnapshot, error) {
		panic("bad payload")
	})
	source.EXPECT().FetchQuote(gomock.Any(), "MSFT").Return(models.MQuoteSnapshot{Timestamp: 1}, nil)

	res := p.Poll(context.Background())

	require.Equal(t, []string{"MSFT"}, res.Succeeded)
	require.Contains(t, res.Failed, "AAPL")
}

func TestPollArchivesSnapshots(t *testing.T) {
	t.Parallel()

	p, source, gate, _ := newTestPoller(t, []string{"AAPL"}, 1)
	archive := mocks.NewMockIQuoteArchive(gomock.NewController(t))
	p.Archive = archive

	gate.EXPECT().IsOpen(gomock.Any()).Return(true)
	source.EXPECT().FetchQuote(gomock.Any(), "AAPL").Return(models.MQuoteSnapshot{Price: 5, Timestamp: 7}, nil)
	archive.EXPECT().SaveQuotes([]models.MQuoteRecord{{
		Symbol:    "AAPL",
		Snapshot:  models.MQuoteSnapshot{Price: 5, Timestamp: 7},
		FetchedAt: 1700000000,
	}}).Return(errors.New("disk full"))

	res := p.Poll(context.Background())

	// Archive failures do not undo the cache append.
	require.Equal(t, []string{"AAPL"}, res.Succeeded)
	require.True(t, p.Cache.HasSymbol("AAPL"))
}

func TestResetClearsCacheAndNotifies(t *testing.T) {
	t.Parallel()

	p, _, _, ex := newTestPoller(t, []string{"AAPL"}, 1)
	p.Cache.Append("AAPL", models.MQuoteSnapshot{Timestamp: 1})

	p.Reset()

	require.Empty(t, p.Cache.All())
	require.Len(t, ex.messages, 1)
	require.Equal(t, models.MessageReset, ex.messages[0].Type)
}
