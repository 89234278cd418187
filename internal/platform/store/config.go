package store

// Config aggregates per backend configuration
type Config struct {
	AppName string

	CH  CHConfig
	RDS RedisConfig
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	Database   string
	ClientName string
	ClientTag  string
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled bool
	Addr    string
	DB      int
}
