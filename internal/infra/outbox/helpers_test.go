//go:build unit

package outbox_test

import "workshop-booking/internal/pkg/config"

func configWithBroker(broker string) config.Config {
	cfg := config.NewTestConfig()
	cfg.Outbox.Broker = broker
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.TopicPrefix = "workshops."
	return cfg
}
