package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Environment-specific values are required; everything else has a default.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Deal   DealConfig
	Worker WorkerConfig
	NATS   NATSConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"20s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"group-deal-engine"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type DealConfig struct {
	// remaining-slot window that triggers NEAR_THRESHOLD alerts
	NearThresholdWindow int `envconfig:"DEAL_NEAR_THRESHOLD_WINDOW" default:"3"`
	ReservationQuantity int `envconfig:"DEAL_RESERVATION_QUANTITY" default:"1"`
	FanoutConcurrency   int `envconfig:"DEAL_FANOUT_CONCURRENCY" default:"8"`
}

type WorkerConfig struct {
	Enabled         bool          `envconfig:"WORKER_ENABLED" default:"true"`
	TaskInterval    time.Duration `envconfig:"WORKER_TASK_INTERVAL" default:"15s"`
	SweepInterval   time.Duration `envconfig:"WORKER_SWEEP_INTERVAL" default:"1m"`
	TaskBatchSize   int32         `envconfig:"WORKER_TASK_BATCH" default:"50"`
	TaskMaxAttempts int32         `envconfig:"WORKER_TASK_MAX_ATTEMPTS" default:"5"`
	RetryBackoff    time.Duration `envconfig:"WORKER_RETRY_BACKOFF" default:"30s"`
	// running tasks older than this are treated as abandoned and reclaimed
	TaskStaleAfter time.Duration `envconfig:"WORKER_TASK_STALE_AFTER" default:"5m"`
}

type NATSConfig struct {
	// empty disables the NATS notification sink
	URL           string `envconfig:"NATS_URL" default:""`
	SubjectPrefix string `envconfig:"NATS_SUBJECT_PREFIX" default:"groupdeal.notifications"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Worker.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects schedules the worker cannot tick on. A disabled worker is not checked.
func (c WorkerConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.TaskInterval <= 0 {
		return fmt.Errorf("WORKER_TASK_INTERVAL must be positive, got %s", c.TaskInterval)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("WORKER_SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}
	if c.TaskBatchSize <= 0 {
		return fmt.Errorf("WORKER_TASK_BATCH must be positive, got %d", c.TaskBatchSize)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Issuer:   "group-deal-engine",
			Duration: time.Hour,
		},
		Deal: DealConfig{
			NearThresholdWindow: 3,
			ReservationQuantity: 1,
			FanoutConcurrency:   8,
		},
		Worker: WorkerConfig{
			Enabled:         false,
			TaskInterval:    time.Second,
			SweepInterval:   time.Second,
			TaskBatchSize:   50,
			TaskMaxAttempts: 5,
			RetryBackoff:    time.Second,
			TaskStaleAfter:  time.Minute,
		},
		NATS: NATSConfig{
			SubjectPrefix: "groupdeal.notifications",
		},
	}
}
