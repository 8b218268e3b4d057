package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUUID    = key("uuid")
	KeyRole    = key("role")
)

const RoleAdmin = "admin"

type Config struct {
	Service   Service
	Platform  Platform
	Postgres  Postgres
	Logger    Logger
	Metrics   Metrics
	Kafka     Kafka
	Members   Members
	Calendar  Calendar
	Broadcast Broadcast
	Sync      Sync
}

type Service struct {
	Port string `env:"STREAM_SERVICE_PORT"`
	Name string `env:"STREAM_SERVICE_NAME" env-default:"stream-service"`
}

type Platform struct {
	Env string `env:"ENV"`
}

type Postgres struct {
	User     string `env:"STREAM_SERVICE_POSTGRES_USER"`
	Password string `env:"STREAM_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"STREAM_SERVICE_POSTGRES_DB"`
	Host     string `env:"STREAM_SERVICE_POSTGRES_HOST"`
	Port     string `env:"STREAM_SERVICE_POSTGRES_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Kafka struct {
	Host              string `env:"KAFKA_HOST"`
	Port              string `env:"KAFKA_PORT"`
	MemberTopic       string `env:"KAFKA_MEMBER_TOPIC"`
	NotificationTopic string `env:"KAFKA_NOTIFICATION_TOPIC"`
}

type Members struct {
	BaseURL string        `env:"MEMBER_SERVICE_URL"`
	Timeout time.Duration `env:"MEMBER_SERVICE_TIMEOUT" env-default:"5s"`
}

// Calendar holds the connection settings for the calendar event provider.
type Calendar struct {
	BaseURL   string        `env:"CALENDAR_GATEWAY_URL"`
	TokenURL  string        `env:"CALENDAR_GATEWAY_TOKEN_URL"`
	ClientID  string        `env:"CALENDAR_GATEWAY_CLIENT_ID"`
	JWTSecret string        `env:"CALENDAR_GATEWAY_JWT_SECRET"`
	Timeout   time.Duration `env:"CALENDAR_GATEWAY_TIMEOUT" env-default:"10s"`
}

// Broadcast holds the connection settings for the live broadcast provider.
type Broadcast struct {
	BaseURL   string        `env:"BROADCAST_GATEWAY_URL"`
	TokenURL  string        `env:"BROADCAST_GATEWAY_TOKEN_URL"`
	ClientID  string        `env:"BROADCAST_GATEWAY_CLIENT_ID"`
	JWTSecret string        `env:"BROADCAST_GATEWAY_JWT_SECRET"`
	Timeout   time.Duration `env:"BROADCAST_GATEWAY_TIMEOUT" env-default:"10s"`
}

type Sync struct {
	QueueSize int `env:"STREAM_SERVICE_SYNC_QUEUE_SIZE" env-default:"256"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}
