package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"API_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"10s"`
}

type WorkerConfig struct {
	MaxAttempts     int           `envconfig:"WORKER_MAX_ATTEMPTS" default:"5"`
	ShutdownTimeout time.Duration `envconfig:"WORKER_SHUTDOWN_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" default:"cliptube"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:"cliptube"`
	DBName   string `envconfig:"POSTGRES_DB" default:"cliptube"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type MinIOConfig struct {
	Endpoint       string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	PublicEndpoint string `envconfig:"MINIO_PUBLIC_ENDPOINT" default:""`
	AccessKey      string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	SecretKey      string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	Bucket         string `envconfig:"MINIO_BUCKET" default:"media"`
	UseSSL         bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RabbitMQConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"cliptube"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"cliptube"`
	VHost    string `envconfig:"RABBITMQ_VHOST" default:"/"`
}

func (c RabbitMQConfig) URL() string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%d%s",
		c.User, c.Password, c.Host, c.Port, c.VHost,
	)
}

// UploadConfig bounds multipart uploads accepted by the API server.
// Files are spooled to TempDir before being pushed to object storage.
type UploadConfig struct {
	TempDir      string `envconfig:"UPLOAD_TEMP_DIR" default:"/tmp/cliptube"`
	MaxVideoSize int64  `envconfig:"UPLOAD_MAX_VIDEO_SIZE" default:"2147483648"`
	MaxImageSize int64  `envconfig:"UPLOAD_MAX_IMAGE_SIZE" default:"10485760"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
