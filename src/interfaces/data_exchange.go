package interfaces

import "stock-backend/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger pushes quote updates to external listeners (websocket hub).
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	// -----------------------------------------------------------------------------
	// Broadcast queues a message for every connected client.
	Broadcast(message *models.MLatestData)

	// -----------------------------------------------------------------------------
	// ConnectionCount returns the number of live clients.
	ConnectionCount() int
}
