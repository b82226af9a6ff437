package events

import (
	"fmt"
	"strings"

	"github.com/servicehub/servicehub/internal/config"
)

// Backend types accepted in events.type
const (
	TypeNone   = "none"
	TypeMemory = "memory"
	TypeNATS   = "nats"
	TypeRedis  = "redis"
	TypeKafka  = "kafka"
)

// NewPublisher creates a Publisher based on configuration.
// An empty type disables publishing.
func NewPublisher(cfg config.EventsConfig) (Publisher, error) {
	backend := strings.ToLower(cfg.Type)
	if backend == "" {
		backend = TypeNone
	}

	switch backend {
	case TypeNone:
		return NopPublisher{}, nil

	case TypeMemory:
		return NewMemoryPublisher(cfg.SubjectPrefix), nil

	case TypeNATS:
		return NewNATSPublisher(cfg.URL, cfg.SubjectPrefix)

	case TypeRedis:
		return NewRedisPublisher(RedisConfig{
			URL:      cfg.URL,
			Password: cfg.Password,
			DB:       cfg.RedisDB,
			Stream:   cfg.RedisStream,
			Prefix:   cfg.SubjectPrefix,
		})

	case TypeKafka:
		return NewKafkaPublisher(KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Prefix:  cfg.SubjectPrefix,
		})

	default:
		return nil, fmt.Errorf("unsupported events type: %s (supported: none, memory, nats, redis, kafka)", backend)
	}
}
