package server

import (
	"encoding/json"
	"net/http"
	"slices"

	"stock-backend/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// runHub owns the client set. It exits when the server shuts down.
func (s *APIServer) runHub() {
	for {
		select {
		case <-s.done:
			s.stateMutex.Lock()
			for client := range s.clients {
				delete(s.clients, client)
				close(client.send)
			}
			s.stateMutex.Unlock()
			return

		case client := <-s.register:
			s.stateMutex.Lock()
			s.clients[client] = struct{}{}
			s.stateMutex.Unlock()

			select {
			case client.send <- s.snapshot(nil):
			default:
			}

		case client := <-s.unregister:
			s.stateMutex.Lock()
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}
			s.stateMutex.Unlock()

		case sub := <-s.subscribe:
			if _, ok := s.clients[sub.client]; !ok {
				continue
			}
			sub.client.symbols = append([]string(nil), sub.symbols...)
			select {
			case sub.client.send <- s.snapshot(sub.symbols):
			default:
			}

		case message := <-s.broadcast:
			s.stateMutex.Lock()
			s.latestUpdate = message.Timestamp
			for client := range s.clients {
				select {
				case client.send <- filterQuotes(message, client.symbols):
				default:
					// Slow consumer, drop it so the hub never blocks
					delete(s.clients, client)
					close(client.send)
				}
			}
			s.stateMutex.Unlock()
		}
	}
}

// -----------------------------------------------------------------------------
// Data Exchange Interface Implementation
// -----------------------------------------------------------------------------

// Broadcast queues a message for every connected client.
func (s *APIServer) Broadcast(message *models.MLatestData) {
	if message == nil {
		return
	}
	select {
	case s.broadcast <- message:
	case <-s.done:
	}
}

// -----------------------------------------------------------------------------

func (s *APIServer) ConnectionCount() int {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return len(s.clients)
}

// -----------------------------------------------------------------------------

// snapshot builds an INITIAL message from the cache, restricted to symbols
// when given.
func (s *APIServer) snapshot(symbols []string) *models.MLatestData {
	s.stateMutex.RLock()
	ts := s.latestUpdate
	s.stateMutex.RUnlock()

	return filterQuotes(&models.MLatestData{
		Type:      models.MessageInitial,
		Quotes:    s.Cache.All(),
		Timestamp: ts,
	}, symbols)
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *APIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Warning("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		send: make(chan *models.MLatestData, 256),
	}

	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

func (s *APIServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Warning("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "subscribe" {
		return
	}

	select {
	case s.subscribe <- subscription{client: client, symbols: cmd.Symbols}:
	case <-s.done:
	}
}

// -----------------------------------------------------------------------------
// Response Filtering
// -----------------------------------------------------------------------------

// filterQuotes keeps only the listed symbols. RESET messages and empty
// filters pass through unchanged.
func filterQuotes(message *models.MLatestData, symbols []string) *models.MLatestData {
	if len(symbols) == 0 || message.Type == models.MessageReset {
		return message
	}

	filtered := make(map[string][]models.MQuoteSnapshot)
	for sym, list := range message.Quotes {
		if slices.Contains(symbols, sym) {
			filtered[sym] = list
		}
	}
	return &models.MLatestData{
		Type:      message.Type,
		Quotes:    filtered,
		Timestamp: message.Timestamp,
	}
}
