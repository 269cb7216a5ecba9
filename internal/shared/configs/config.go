package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Redis    RedisConfig    `mapstructure:"redis" validate:"required"`
	Postgres PostgresConfig `mapstructure:"postgres" validate:"required"`
	Rollup   RollupConfig   `mapstructure:"rollup" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// RedisConfig holds the counter snapshot cache configuration.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// PostgresConfig holds the durable rollup store configuration.
type PostgresConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// RollupConfig holds the daily rollup pipeline configuration.
type RollupConfig struct {
	SnapshotTTLDays int `mapstructure:"snapshot_ttl_days" validate:"required,min=1"`
	RetentionDays   int `mapstructure:"retention_days" validate:"required,min=1"`
	Workers         int `mapstructure:"workers" validate:"required,min=1,max=64"`
}
