package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"stock-backend/src/helpers"
	"stock-backend/src/models"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

var DefaultSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}

const DefaultPromptTemplate = `You are a financial sentiment analyst. Use only the context below to answer.
If the question is not about stocks, markets, companies or financial sentiment, reply that you can only answer financial sentiment questions.

Context:
{{.Context}}

Question: {{.Query}}

Answer in 1-2 short lines.`

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig loads the YAML file at configPath (a missing file is allowed),
// applies environment overrides and defaults, then validates.
func NewConfig(configPath string) (*Config, error) {
	var modelConfig models.MConfig

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &modelConfig); err != nil {
				return nil, helpers.NewConfigurationError("failed to parse config from YAML", err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// defaults + env only
		default:
			return nil, helpers.NewConfigurationError(fmt.Sprintf("failed to read config file '%s'", configPath), err)
		}
	}

	config := &Config{MConfig: &modelConfig}
	config.applyEnvOverrides()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, helpers.NewConfigurationError("config validation failed", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("STOCK_SYMBOLS"); v != "" {
		c.DataSource.Symbols = ParseSymbols(v)
	}
	setString(&c.DataSource.APIKey, "FINNHUB_API_KEY")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Blob.ConnectionString, "AZURE_STORAGE_CONNECTION_STRING")
	setString(&c.LLM.SiteURL, "YOUR_SITE_URL")
	setString(&c.LLM.SiteName, "YOUR_SITE_NAME")
	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.Sentiment.Strategy, "CHAT_STRATEGY")
	setString(&c.Storage.DBConnectionString, "DATABASE_URL")

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}

	// Provider keys only land on the provider that uses them.
	switch c.LLM.Provider {
	case "huggingface", "":
		setString(&c.LLM.APIKey, "HUGGINGFACE_API_KEY")
	case "openrouter":
		setString(&c.LLM.APIKey, "OPENROUTER_API_KEY")
	case "azure_openai":
		setString(&c.LLM.APIKey, "AZURE_OPENAI_API_KEY")
		setString(&c.LLM.BaseURL, "AZURE_OPENAI_ENDPOINT")
	}
	if c.Embedding.Provider == "azure_openai" {
		setString(&c.Embedding.APIKey, "AZURE_OPENAI_API_KEY")
		setString(&c.Embedding.BaseURL, "AZURE_OPENAI_ENDPOINT")
	}
}

// -----------------------------------------------------------------------------

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// -----------------------------------------------------------------------------

// ParseSymbols splits a comma separated list and trims blanks. Case is kept:
// symbols are cache keys and lookups are exact.
func ParseSymbols(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// -----------------------------------------------------------------------------

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "stock-backend"
	}
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.GrpcHost == "" {
		c.GrpcHost = "127.0.0.1"
	}

	if c.Storage.DBType == "" {
		c.Storage.DBType = "none"
	}
	if c.Storage.Schema == "" {
		c.Storage.Schema = "stock_backend"
	}

	if c.Network.RequestTimeout == 0 {
		c.Network.RequestTimeout = 10
	}
	if c.Network.ConcurrentRequests == 0 {
		c.Network.ConcurrentRequests = 1
	}
	if c.Network.UserAgent == "" {
		c.Network.UserAgent = "stock-backend/1.0"
	}

	if c.DataSource.Name == "" {
		c.DataSource.Name = "finnhub"
	}
	if c.DataSource.BaseURL == "" {
		c.DataSource.BaseURL = "https://finnhub.io/api/v1"
	}
	if len(c.DataSource.Symbols) == 0 {
		c.DataSource.Symbols = append([]string(nil), DefaultSymbols...)
	}
	if c.DataSource.UpdateIntervalSeconds == 0 {
		c.DataSource.UpdateIntervalSeconds = 300
	}
	if c.DataSource.PollOnStart == nil {
		yes := true
		c.DataSource.PollOnStart = &yes
	}

	if c.MarketHours.Open == "" {
		c.MarketHours.Open = "09:30"
	}
	if c.MarketHours.Close == "" {
		c.MarketHours.Close = "16:00"
	}
	if c.MarketHours.Timezone == "" {
		c.MarketHours.Timezone = "America/New_York"
	}

	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "America/New_York"
	}
	if c.Schedule.ResetCron == "" {
		c.Schedule.ResetCron = "0 0 0 * * *"
	}
	if c.Schedule.ShutdownWaitSecs == 0 {
		c.Schedule.ShutdownWaitSecs = 10
	}

	if c.Blob.Provider == "" {
		c.Blob.Provider = "azure"
	}
	if c.Blob.Container == "" {
		c.Blob.Container = "faiss-index"
	}
	if c.Blob.IndexBlob == "" {
		c.Blob.IndexBlob = "index.parquet"
	}
	if c.Blob.MetadataBlob == "" {
		c.Blob.MetadataBlob = "index_metadata.json"
	}
	if c.Blob.GraphBlob == "" {
		c.Blob.GraphBlob = "sentiment_graph.html"
	}
	if c.Blob.LocalDir == "" {
		c.Blob.LocalDir = "data/index"
	}
	if c.Blob.TimeoutSecs == 0 {
		c.Blob.TimeoutSecs = 120
	}

	if c.Embedding.Provider == "" {
		c.Embedding.Provider = "ollama"
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "nomic-embed-text"
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = "huggingface"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "mistralai/Mistral-7B-Instruct-v0.2"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 256
	}
	if c.LLM.TimeoutSecs == 0 {
		c.LLM.TimeoutSecs = 60
	}

	if c.Sentiment.Strategy == "" {
		c.Sentiment.Strategy = "rag"
	}
	if c.Sentiment.Retriever == "" {
		c.Sentiment.Retriever = "local"
	}
	if c.Sentiment.TopK == 0 {
		c.Sentiment.TopK = 3
	}
	if c.Sentiment.PromptTemplate == "" {
		c.Sentiment.PromptTemplate = DefaultPromptTemplate
	}

	if c.Qdrant.Address == "" {
		c.Qdrant.Address = "localhost:6334"
	}
	if c.Qdrant.Collection == "" {
		c.Qdrant.Collection = "sentiment"
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}
	if c.GrpcPort != 0 && (c.GrpcPort <= 1024 || c.GrpcPort > 65535) {
		return fmt.Errorf("invalid grpc port number: %d", c.GrpcPort)
	}

	switch c.Storage.DBType {
	case "none":
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("database path cannot be empty for sqlite")
		}
	case "postgres":
		if c.Storage.DBConnectionString == "" {
			return fmt.Errorf("database connection string cannot be empty for postgres")
		}
	default:
		return fmt.Errorf("unknown database type '%s'", c.Storage.DBType)
	}

	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Network.ConcurrentRequests <= 0 {
		return fmt.Errorf("concurrent requests must be greater than 0")
	}
	if c.Blob.TimeoutSecs <= 0 {
		return fmt.Errorf("blob timeout must be greater than 0")
	}

	if c.DataSource.UpdateIntervalSeconds <= 0 {
		return fmt.Errorf("update interval must be greater than 0")
	}
	if len(c.DataSource.Symbols) == 0 {
		return fmt.Errorf("at least one symbol must be configured")
	}

	if _, err := time.LoadLocation(c.MarketHours.Timezone); err != nil {
		return fmt.Errorf("invalid market timezone '%s': %w", c.MarketHours.Timezone, err)
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("invalid schedule timezone '%s': %w", c.Schedule.Timezone, err)
	}

	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Schedule.ResetCron); err != nil {
		return fmt.Errorf("invalid reset cron '%s': %w", c.Schedule.ResetCron, err)
	}
	if c.Schedule.IndexReloadCron != "" {
		if _, err := parser.Parse(c.Schedule.IndexReloadCron); err != nil {
			return fmt.Errorf("invalid index reload cron '%s': %w", c.Schedule.IndexReloadCron, err)
		}
	}

	switch c.Sentiment.Strategy {
	case "rag", "passthrough":
	default:
		return fmt.Errorf("unknown chat strategy '%s'", c.Sentiment.Strategy)
	}
	switch c.Sentiment.Retriever {
	case "local", "qdrant":
	default:
		return fmt.Errorf("unknown retriever '%s'", c.Sentiment.Retriever)
	}
	if c.Sentiment.TopK <= 0 {
		return fmt.Errorf("top_k must be greater than 0")
	}

	switch c.LLM.Provider {
	case "huggingface", "openrouter", "azure_openai", "ollama":
	default:
		return fmt.Errorf("unknown llm provider '%s'", c.LLM.Provider)
	}
	switch c.Embedding.Provider {
	case "ollama", "azure_openai":
	default:
		return fmt.Errorf("unknown embedding provider '%s'", c.Embedding.Provider)
	}
	switch c.Blob.Provider {
	case "azure", "local":
	default:
		return fmt.Errorf("unknown blob provider '%s'", c.Blob.Provider)
	}

	return nil
}

// -----------------------------------------------------------------------------

// NeedsLocalIndex reports whether the chat strategy reads the downloaded index.
func (c *Config) NeedsLocalIndex() bool {
	return c.Sentiment.Strategy == "rag" && c.Sentiment.Retriever == "local"
}

// -----------------------------------------------------------------------------

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.DataSource.UpdateIntervalSeconds) * time.Second
}

// -----------------------------------------------------------------------------

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Network.RequestTimeout) * time.Second
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
