package events

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/servicehub/servicehub/internal/domain"
)

// RedisConfig represents Redis Streams configuration
type RedisConfig struct {
	URL      string // Redis URL (e.g., redis://localhost:6379)
	Password string // Optional password
	DB       int    // Database number (default: 0)
	Stream   string // Stream key prefix (default: "servicehub")
	Prefix   string // Subject prefix
	MaxLen   int64  // Approximate stream cap, 0 keeps everything
}

// RedisPublisher appends events to Redis Streams named <stream>:<subject>
type RedisPublisher struct {
	client *redis.Client
	config RedisConfig
}

// NewRedisPublisher connects and pings the server
func NewRedisPublisher(cfg RedisConfig) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		opts = &redis.Options{
			Addr:     cfg.URL,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if cfg.Stream == "" {
		cfg.Stream = "servicehub"
	}

	return &RedisPublisher{client: client, config: cfg}, nil
}

// StreamName returns the stream key used for an event type
func (p *RedisPublisher) StreamName(t domain.EventType) string {
	return fmt.Sprintf("%s:%s", p.config.Stream, Subject(p.config.Prefix, t))
}

// Publish XADDs the encoded event
func (p *RedisPublisher) Publish(ctx context.Context, e domain.ServiceEvent) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}

	stream := p.StreamName(e.Type)
	args := &redis.XAddArgs{
		Stream: stream,
		ID:     "*",
		Values: map[string]interface{}{
			"service_id": e.ServiceID.String(),
			"data":       data,
		},
	}
	if p.config.MaxLen > 0 {
		args.MaxLen = p.config.MaxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis stream %s: %w", stream, err)
	}
	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
