package interfaces

import "context"

//go:generate mockgen -package=mocks -destination=../mocks/mock_network_manager.go -source=network_manager.go INetworkManager

// -----------------------------------------------------------------------------
// INetworkManager defines the contract for outbound HTTP GET requests.
// -----------------------------------------------------------------------------

type INetworkManager interface {

	// -----------------------------------------------------------------------------

	// Get performs a GET request to the specified URL with query parameters.
	// Returns the response body or an error for transport failures and non-2xx statuses.
	Get(ctx context.Context, url string, params map[string]string) ([]byte, error)
}
