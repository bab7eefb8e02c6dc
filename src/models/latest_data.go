package models

// -----------------------------------------------------------------------------
// Websocket stream message
// -----------------------------------------------------------------------------

const (
	MessageInitial = "INITIAL"
	MessageUpdate  = "UPDATE"
	MessageReset   = "RESET"
)

type MLatestData struct {
	Type      string                      `json:"type"`
	Quotes    map[string][]MQuoteSnapshot `json:"quotes"`
	Timestamp int64                       `json:"timestamp"`
}

// -----------------------------------------------------------------------------
// SubscribeCommand for client messages
// -----------------------------------------------------------------------------

type MSubscribeCommand struct {
	Command string   `json:"command"`
	Symbols []string `json:"symbols"`
}
