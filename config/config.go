package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Kafka configuration
	KafkaBrokers     []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	KafkaEventsTopic string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"payments.webhook-events"`

	// Connector webhook secrets
	CheckoutWebhookSecret string `env:"CHECKOUT_WEBHOOK_SECRET,required"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
