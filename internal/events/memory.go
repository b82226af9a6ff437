package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/servicehub/servicehub/internal/domain"
)

// MessageHandler handles an encoded event
type MessageHandler func(data []byte) error

// MemoryPublisher delivers events over buffered channels in-process.
// Useful for development and tests without a broker.
type MemoryPublisher struct {
	prefix        string
	channels      map[string]chan []byte
	subscriptions map[string]context.CancelFunc
	closed        bool
	mu            sync.RWMutex
}

// NewMemoryPublisher creates an empty in-memory publisher
func NewMemoryPublisher(prefix string) *MemoryPublisher {
	return &MemoryPublisher{
		prefix:        prefix,
		channels:      make(map[string]chan []byte),
		subscriptions: make(map[string]context.CancelFunc),
	}
}

func (p *MemoryPublisher) channel(subject string) (chan []byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, fmt.Errorf("memory publisher closed")
	}
	if ch, ok := p.channels[subject]; ok {
		return ch, nil
	}

	ch := make(chan []byte, 1024)
	p.channels[subject] = ch
	return ch, nil
}

// Publish enqueues the event. A full channel is an error, never a block.
func (p *MemoryPublisher) Publish(ctx context.Context, e domain.ServiceEvent) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}

	subject := Subject(p.prefix, e.Type)
	ch, err := p.channel(subject)
	if err != nil {
		return err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return fmt.Errorf("memory publisher closed")
	}

	select {
	case ch <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("channel full for subject: %s", subject)
	}
}

// Subscribe consumes events of type t in a background goroutine
func (p *MemoryPublisher) Subscribe(t domain.EventType, handler MessageHandler) error {
	subject := Subject(p.prefix, t)
	ch, err := p.channel(subject)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.subscriptions[subject]; exists {
		return fmt.Errorf("already subscribed to subject: %s", subject)
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.subscriptions[subject] = cancel

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case data, ok := <-ch:
				if !ok {
					return
				}
				_ = handler(data)
			}
		}
	}()
	return nil
}

// Pending returns the number of undelivered events of type t
func (p *MemoryPublisher) Pending(t domain.EventType) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if ch, ok := p.channels[Subject(p.prefix, t)]; ok {
		return len(ch)
	}
	return 0
}

// Close stops subscribers and closes all channels
func (p *MemoryPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	for subject, cancel := range p.subscriptions {
		cancel()
		delete(p.subscriptions, subject)
	}
	for subject, ch := range p.channels {
		close(ch)
		delete(p.channels, subject)
	}
	return nil
}
