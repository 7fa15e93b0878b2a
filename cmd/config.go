package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"fulfillment"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// RabbitMQURL is optional; without it push and email are written to the log.
	RabbitMQURL string `envconfig:"RABBITMQ_URL"`

	NotifyWorkers   int    `envconfig:"NOTIFY_WORKERS" default:"4"`
	NotifyQueueSize int    `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	MailFrom        string `envconfig:"MAIL_FROM" default:"orders@fulfillment.local"`
	PruneSchedule   string `envconfig:"PRUNE_SCHEDULE" default:"0 0 * * * *"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
