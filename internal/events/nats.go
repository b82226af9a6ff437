package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/servicehub/servicehub/internal/domain"
)

// NATSPublisher publishes events through NATS JetStream
type NATSPublisher struct {
	conn   *nats.Conn
	js     nats.JetStreamContext
	prefix string
	owned  bool
}

// NewNATSPublisher connects to url and creates a JetStream context
func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("servicehub"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	p, err := NewNATSPublisherWithConn(conn, prefix)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.owned = true
	return p, nil
}

// NewNATSPublisherWithConn reuses an existing connection. Close leaves it open.
func NewNATSPublisherWithConn(conn *nats.Conn, prefix string) (*NATSPublisher, error) {
	js, err := conn.JetStream()
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &NATSPublisher{conn: conn, js: js, prefix: prefix}, nil
}

// EnsureStream creates the stream capturing <prefix>.> if it does not exist
func (p *NATSPublisher) EnsureStream(name string) error {
	if _, err := p.js.StreamInfo(name); err == nil {
		return nil
	}

	_, err := p.js.AddStream(&nats.StreamConfig{
		Name:     name,
		Subjects: []string{Subject(p.prefix, ">")},
		Storage:  nats.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", name, err)
	}
	return nil
}

// Publish queues the event and waits for the JetStream ack or ctx
func (p *NATSPublisher) Publish(ctx context.Context, e domain.ServiceEvent) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}

	subject := Subject(p.prefix, e.Type)
	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set("Service-ID", e.ServiceID.String())

	future, err := p.js.PublishMsgAsync(msg)
	if err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	}

	select {
	case <-future.Ok():
		return nil
	case err := <-future.Err():
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	case <-ctx.Done():
		return fmt.Errorf("timeout waiting for ack on %s: %w", subject, ctx.Err())
	}
}

// Close closes the connection if the publisher opened it
func (p *NATSPublisher) Close() error {
	if p.owned {
		p.conn.Close()
	}
	return nil
}
