package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Quota    QuotaConfig
	Plans    PlansConfig
	Jobs     JobsConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// StoreConfig selects the record store backend
type StoreConfig struct {
	// Driver is "file" or "postgres"
	Driver string
	Path   string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon configuration. An empty address disables queueing.
type NSQConfig struct {
	Address string
	Topic   string
	Channel string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AdminConfig holds the super admin credentials
type AdminConfig struct {
	Username string
	Password string
}

// QuotaConfig toggles plan-based shop limits
type QuotaConfig struct {
	ShopLimitEnabled bool
}

// PlansConfig points at the plan catalog file
type PlansConfig struct {
	File string
}

// JobsConfig schedules background jobs
type JobsConfig struct {
	// OverdueInterval is the overdue reminder period in minutes. 0 disables the schedule.
	OverdueInterval int
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
