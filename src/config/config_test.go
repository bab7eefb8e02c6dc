package config

import (
	"os"
	"path/filepath"
	"testing"

	"stock-backend/src/helpers"

	"github.com/stretchr/testify/require"
)

func TestNewConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("STOCK_SYMBOLS", "")

	cfg, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.Equal(t, DefaultSymbols, cfg.DataSource.Symbols)
	require.Equal(t, 300, cfg.DataSource.UpdateIntervalSeconds)
	require.Equal(t, "America/New_York", cfg.MarketHours.Timezone)
	require.Equal(t, "0 0 0 * * *", cfg.Schedule.ResetCron)
	require.Equal(t, 3, cfg.Sentiment.TopK)
	require.Equal(t, 120, cfg.Blob.TimeoutSecs)
	require.True(t, *cfg.DataSource.PollOnStart)
	require.True(t, cfg.NeedsLocalIndex())
}

func TestNewConfigEnvOverridesYAML(t *testing.T) {
	// Arrange: a YAML file and env vars that override parts of it
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlBody := `
name: quotes
port: 9000
llm:
  provider: openrouter
  model: mistralai/mistral-7b-instruct
data_source:
  symbols: [IBM]
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0644))
	t.Setenv("STOCK_SYMBOLS", " AAPL, MSFT ,,")
	t.Setenv("FINNHUB_API_KEY", "fh-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("HUGGINGFACE_API_KEY", "hf-key")
	t.Setenv("YOUR_SITE_URL", "https://example.org")

	// Act
	cfg, err := NewConfig(path)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "quotes", cfg.Name)
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, []string{"AAPL", "MSFT"}, cfg.DataSource.Symbols)
	require.Equal(t, "fh-key", cfg.DataSource.APIKey)
	require.Equal(t, "or-key", cfg.LLM.APIKey)
	require.Equal(t, "https://example.org", cfg.LLM.SiteURL)
}

func TestNewConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"strategy": "sentiment:\n  strategy: magic\n",
		"timezone": "market_hours:\n  timezone: Mars/Olympus\n",
		"cron":     "schedule:\n  reset_cron: every day\n",
		"port":     "port: 80\n",
		"sqlite":   "storage:\n  db_type: sqlite\n",
		"blob":     "blob:\n  timeout: -5\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			_, err := NewConfig(path)

			var cfgErr *helpers.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("STOCK_SYMBOLS", "")

	cfg, err := NewConfig("")
	require.NoError(t, err)
	cfg.DataSource.Symbols = []string{"NVDA"}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, cfg.Save(path))

	reloaded, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"NVDA"}, reloaded.DataSource.Symbols)
}

func TestParseSymbols(t *testing.T) {
	require.Equal(t, []string{"aapl", "TSLA"}, ParseSymbols("aapl,,  TSLA "))
	require.Nil(t, ParseSymbols(" , "))
}
