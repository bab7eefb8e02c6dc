package models

// MConfig Structure
type MConfig struct {
	Name        string             `yaml:"name"`
	Host        string             `yaml:"host"`
	Port        int                `yaml:"port"`
	LogLevel    string             `yaml:"log_level"`
	GrpcHost    string             `yaml:"grpc_host"`
	GrpcPort    int                `yaml:"grpc_port"`
	Storage     MStorageConfig     `yaml:"storage"`
	Network     MNetworkConfig     `yaml:"network"`
	DataSource  MDataSourceConfig  `yaml:"data_source"`
	MarketHours MMarketHoursConfig `yaml:"market_hours"`
	Schedule    MScheduleConfig    `yaml:"schedule"`
	Blob        MBlobConfig        `yaml:"blob"`
	Embedding   MEmbeddingConfig   `yaml:"embedding"`
	LLM         MLLMConfig         `yaml:"llm"`
	Sentiment   MSentimentConfig   `yaml:"sentiment"`
	Qdrant      MQdrantConfig      `yaml:"qdrant"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"` // none | sqlite | postgres
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
	Schema             string `yaml:"schema"`
}

type MNetworkConfig struct {
	Proxy              string `yaml:"proxy"`
	RequestTimeout     int    `yaml:"timeout"`
	ConcurrentRequests int    `yaml:"concurrent_requests"`
	UserAgent          string `yaml:"user_agent"`
}

type MDataSourceConfig struct {
	Name                  string   `yaml:"name"`
	BaseURL               string   `yaml:"base_url"`
	APIKey                string   `yaml:"api_key"`
	Symbols               []string `yaml:"symbols"`
	UpdateIntervalSeconds int      `yaml:"update_interval_seconds"`
	PollOnStart           *bool    `yaml:"poll_on_start"`
}

type MMarketHoursConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Open     string `yaml:"open"`
	Close    string `yaml:"close"`
	Timezone string `yaml:"timezone"`
	Calendar string `yaml:"calendar"` // exchange MIC, empty disables business-day check
}

type MScheduleConfig struct {
	Timezone         string `yaml:"timezone"`
	ResetCron        string `yaml:"reset_cron"`
	IndexReloadCron  string `yaml:"index_reload_cron"`
	ShutdownWaitSecs int    `yaml:"shutdown_wait_seconds"`
}

type MBlobConfig struct {
	Provider         string `yaml:"provider"` // azure | local
	ConnectionString string `yaml:"connection_string"`
	Container        string `yaml:"container"`
	SourceDir        string `yaml:"source_dir"` // local provider only
	IndexBlob        string `yaml:"index_blob"`
	MetadataBlob     string `yaml:"metadata_blob"`
	GraphBlob        string `yaml:"graph_blob"`
	LocalDir         string `yaml:"local_dir"`
	TimeoutSecs      int    `yaml:"timeout"`
}

type MEmbeddingConfig struct {
	Provider string `yaml:"provider"` // ollama | azure_openai
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
}

type MLLMConfig struct {
	Provider    string  `yaml:"provider"` // huggingface | openrouter | azure_openai | ollama
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	SiteURL     string  `yaml:"site_url"`
	SiteName    string  `yaml:"site_name"`
	TimeoutSecs int     `yaml:"timeout"`
}

type MSentimentConfig struct {
	Strategy       string `yaml:"strategy"`  // rag | passthrough
	Retriever      string `yaml:"retriever"` // local | qdrant
	TopK           int    `yaml:"top_k"`
	PromptTemplate string `yaml:"prompt_template"`
}

type MQdrantConfig struct {
	Address    string `yaml:"address"`
	Collection string `yaml:"collection"`
}
