package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

type Config struct {
	Env      string `env:"ENV" env-default:"prod"`
	HTTP     HTTPConfig
	Database DatabaseConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST"`
	Port            string        `env:"PORT" env-default:"4000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type DatabaseConfig struct {
	URL                string        `env:"DATABASE_URL" env-required:"true"`
	PingTimeout        time.Duration `env:"DATABASE_PING_TIMEOUT" env-default:"10s"`
	MaxOpenConns       int           `env:"DATABASE_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns       int           `env:"DATABASE_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime    time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" env-default:"1h"`
	SlowQueryThreshold time.Duration `env:"DATABASE_SLOW_QUERY_THRESHOLD" env-default:"200ms"`
	AutoMigrate        bool          `env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
}
