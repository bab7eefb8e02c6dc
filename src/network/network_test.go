package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stock-backend/src/helpers"
	"stock-backend/src/logger"
	"stock-backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, timeoutSecs int) *AsyncNetworkManager {
	t.Helper()
	cfg := &models.MConfig{}
	cfg.Network.RequestTimeout = timeoutSecs
	cfg.Network.UserAgent = "test-agent"
	nm, err := NewAsyncNetworkManager(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	return nm
}

func TestGetSendsParamsAndUserAgent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "k", r.URL.Query().Get("token"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	body, err := newManager(t, 5).Get(context.Background(), srv.URL+"/quote", map[string]string{"symbol": "AAPL", "token": "k"})

	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(body))
}

func TestGetDoesNotRetryOnBadStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newManager(t, 5).Get(context.Background(), srv.URL, nil)

	var netErr *helpers.NetworkError
	require.ErrorAs(t, err, &netErr)
	require.EqualValues(t, 1, calls.Load())
}

func TestGetHonoursContextDeadline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newManager(t, 30).Get(ctx, srv.URL, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewAsyncNetworkManagerRejectsBadProxy(t *testing.T) {
	t.Parallel()

	cfg := &models.MConfig{}
	cfg.Network.RequestTimeout = 1
	cfg.Network.Proxy = "://bad"

	_, err := NewAsyncNetworkManager(cfg, logger.NewNopLogger())

	var cfgErr *helpers.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}
