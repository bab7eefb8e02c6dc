package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stock-backend/src/helpers"
	"stock-backend/src/logger"
	"stock-backend/src/models"
)

// maxBodyBytes bounds how much of a response is read into memory.
const maxBodyBytes = 4 << 20

// AsyncNetworkManager issues single-shot GET requests. There is no retry:
// a failed call is reported to the caller, which decides what to skip.
type AsyncNetworkManager struct {
	Config *models.MConfig
	Client *http.Client
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAsyncNetworkManager(cfg *models.MConfig, log *logger.Logger) (*AsyncNetworkManager, error) {
	client, err := createClient(cfg)
	if err != nil {
		return nil, err
	}
	return &AsyncNetworkManager{
		Config: cfg,
		Client: client,
		Logger: log.Named("Network"),
	}, nil
}

// -----------------------------------------------------------------------------

func createClient(cfg *models.MConfig) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.Network.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Network.Proxy)
		if err != nil {
			return nil, helpers.NewConfigurationError("invalid proxy url", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   time.Duration(cfg.Network.RequestTimeout) * time.Second,
	}, nil
}

// -----------------------------------------------------------------------------

// Get performs one GET request bounded by the configured timeout and ctx.
func (nm *AsyncNetworkManager) Get(ctx context.Context, urlStr string, params map[string]string) ([]byte, error) {
	reqURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, helpers.NewNetworkError("invalid url", err)
	}

	q := reqURL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, helpers.NewNetworkError("build request", err)
	}
	if nm.Config.Network.UserAgent != "" {
		req.Header.Set("User-Agent", nm.Config.Network.UserAgent)
	}

	resp, err := nm.Client.Do(req)
	if err != nil {
		return nil, helpers.NewNetworkError(fmt.Sprintf("GET %s", reqURL.Path), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, helpers.NewNetworkError("read body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		nm.Logger.Debug("GET %s returned %d", reqURL.Path, resp.StatusCode)
		return nil, helpers.NewNetworkError(fmt.Sprintf("GET %s", reqURL.Path), fmt.Errorf("bad status: %d", resp.StatusCode))
	}

	return body, nil
}
