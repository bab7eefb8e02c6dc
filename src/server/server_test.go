package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stock-backend/src/logger"
	"stock-backend/src/mocks"
	"stock-backend/src/models"
	"stock-backend/src/utils"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var aaplSnapshot = models.MQuoteSnapshot{
	Price: 150.0, High: 155.0, Low: 149.0, Open: 151.0, PreviousClose: 148.0, Timestamp: 1700000000,
}

func newTestServer(t *testing.T, chat *mocks.MockIChatHandler, index *mocks.MockIIndexLoader) *APIServer {
	t.Helper()
	cfg := &models.MConfig{}
	cfg.DataSource.Symbols = []string{"AAPL", "MSFT"}
	cfg.DataSource.UpdateIntervalSeconds = 300
	cfg.Sentiment.Strategy = "rag"

	s := NewAPIServer(cfg, utils.NewQuoteCache(), nil, nil, logger.NewNopLogger())
	if chat != nil {
		s.Chat = chat
	}
	if index != nil {
		s.Index = index
	}
	t.Cleanup(func() { _ = s.Shutdown(t.Context()) })
	return s
}

func doRequest(s *APIServer, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

// -----------------------------------------------------------------------------
// Quote routes
// -----------------------------------------------------------------------------

func TestRootWelcome(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := doRequest(s, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Welcome to the Stock Backend API!"}`, w.Body.String())
}

func TestGetStockKnownAndUnknown(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.Cache.Append("AAPL", aaplSnapshot)

	w := doRequest(s, http.MethodGet, "/stocks/AAPL", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"AAPL":[{"price":150.0,"high":155.0,"low":149.0,"open":151.0,"previous_close":148.0,"timestamp":1700000000}]}`, w.Body.String())

	w = doRequest(s, http.MethodGet, "/stocks/UNKNOWN", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"error":"Stock not found"}`, w.Body.String())
}

func TestGetStocks(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := doRequest(s, http.MethodGet, "/stocks", nil)
	require.JSONEq(t, `{}`, w.Body.String())

	s.Cache.Append("AAPL", aaplSnapshot)
	s.Cache.Append("MSFT", models.MQuoteSnapshot{Price: 400, Timestamp: 1})

	w = doRequest(s, http.MethodGet, "/stocks", nil)
	var body map[string][]models.MQuoteSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	require.Equal(t, []models.MQuoteSnapshot{aaplSnapshot}, body["AAPL"])
}

// -----------------------------------------------------------------------------
// Sentiment routes
// -----------------------------------------------------------------------------

func TestChatRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockIChatHandler(ctrl)
	chat.EXPECT().Chat(gomock.Any(), "hello").Return(models.ChatResponse("Hi, ask me about stocks."))
	chat.EXPECT().Chat(gomock.Any(), "broken").Return(models.ChatError(errors.New("vector index is not loaded")))
	s := newTestServer(t, chat, nil)

	w := doRequest(s, http.MethodGet, "/sentiment/chat/hello", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"response":"Hi, ask me about stocks."}`, w.Body.String())

	w = doRequest(s, http.MethodGet, "/sentiment/chat/broken", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"error":"vector index is not loaded"}`, w.Body.String())
}

func TestReloadRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockIIndexLoader(ctrl)
	gomock.InOrder(
		index.EXPECT().Load(gomock.Any()).Return(nil),
		index.EXPECT().LoadGraph(gomock.Any()).Return(errors.New("graph blob missing")),
		index.EXPECT().Load(gomock.Any()).Return(errors.New("download index.parquet: blob not found")),
	)
	s := newTestServer(t, nil, index)

	// Graph failures do not fail the reload.
	w := doRequest(s, http.MethodPost, "/sentiment/reload-faiss", nil)
	require.JSONEq(t, `{"message":"FAISS index reloaded successfully"}`, w.Body.String())

	w = doRequest(s, http.MethodPost, "/sentiment/reload-faiss", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"error":"download index.parquet: blob not found"}`, w.Body.String())
}

func TestGetGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockIIndexLoader(ctrl)
	path := filepath.Join(t.TempDir(), "graph.html")
	index.EXPECT().GraphPath().Return(path).AnyTimes()
	s := newTestServer(t, nil, index)

	w := doRequest(s, http.MethodGet, "/sentiment/get-graph", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")

	require.NoError(t, os.WriteFile(path, []byte("<html>sentiment</html>"), 0o644))
	w = doRequest(s, http.MethodGet, "/sentiment/get-graph", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "<html>sentiment</html>", w.Body.String())
}

// -----------------------------------------------------------------------------
// Operational routes and middleware
// -----------------------------------------------------------------------------

func TestHealthAndConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockIIndexLoader(ctrl)
	index.EXPECT().Loaded().Return(true)
	s := newTestServer(t, nil, index)
	s.Cache.Append("AAPL", aaplSnapshot)

	w := doRequest(s, http.MethodGet, "/api/health", nil)
	require.JSONEq(t, `{"status":"ok","connections":0,"latest_update":0,"symbols":1,"index_loaded":true}`, w.Body.String())

	w = doRequest(s, http.MethodGet, "/api/config", nil)
	require.JSONEq(t, `{"symbols":["AAPL","MSFT"],"strategy":"rag","poll_interval_seconds":300}`, w.Body.String())
}

func TestRequestIDAndCORS(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := doRequest(s, http.MethodGet, "/", nil)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = doRequest(s, http.MethodGet, "/", map[string]string{"X-Request-ID": "abc-123"})
	require.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = doRequest(s, http.MethodOptions, "/stocks", map[string]string{
		"Origin":                         "http://localhost:3000",
		"Access-Control-Request-Method":  "GET",
		"Access-Control-Request-Headers": "X-Custom",
	})
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "X-Custom", w.Header().Get("Access-Control-Allow-Headers"))
}

// -----------------------------------------------------------------------------
// WebSocket stream
// -----------------------------------------------------------------------------

func readMessage(t *testing.T, conn *websocket.Conn) models.MLatestData {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg models.MLatestData
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocketInitialSubscribeAndUpdate(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.Cache.Append("AAPL", aaplSnapshot)

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	// Initial state covers the whole cache.
	initial := readMessage(t, conn)
	require.Equal(t, models.MessageInitial, initial.Type)
	require.Equal(t, []models.MQuoteSnapshot{aaplSnapshot}, initial.Quotes["AAPL"])
	require.Equal(t, 1, s.ConnectionCount())

	// Subscribing narrows the stream.
	require.NoError(t, conn.WriteJSON(models.MSubscribeCommand{Command: "subscribe", Symbols: []string{"MSFT"}}))
	filtered := readMessage(t, conn)
	require.Equal(t, models.MessageInitial, filtered.Type)
	require.Empty(t, filtered.Quotes)

	s.Broadcast(&models.MLatestData{
		Type: models.MessageUpdate,
		Quotes: map[string][]models.MQuoteSnapshot{
			"AAPL": {aaplSnapshot},
			"MSFT": {{Price: 410, Timestamp: 1700000300}},
		},
		Timestamp: 1700000300,
	})
	update := readMessage(t, conn)
	require.Equal(t, models.MessageUpdate, update.Type)
	require.Len(t, update.Quotes, 1)
	require.Contains(t, update.Quotes, "MSFT")

	s.Broadcast(&models.MLatestData{Type: models.MessageReset, Quotes: map[string][]models.MQuoteSnapshot{}, Timestamp: 1700086400})
	reset := readMessage(t, conn)
	require.Equal(t, models.MessageReset, reset.Type)
}

func TestFilterQuotes(t *testing.T) {
	msg := &models.MLatestData{
		Type:   models.MessageUpdate,
		Quotes: map[string][]models.MQuoteSnapshot{"AAPL": {aaplSnapshot}, "TSLA": {{Price: 1}}},
	}

	require.Same(t, msg, filterQuotes(msg, nil))

	out := filterQuotes(msg, []string{"TSLA"})
	require.Len(t, out.Quotes, 1)
	require.Contains(t, out.Quotes, "TSLA")
	require.Len(t, msg.Quotes, 2, "input is not modified")
}
