// Package events publishes notifications about resources created through the API.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/nats-io/nats.go"
)

// ResourceCreated is published after the API assigns an id to a new resource.
type ResourceCreated struct {
	Resource  string    `json:"resource"`
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publisher sends resource events.
type Publisher interface {
	PublishCreated(ctx context.Context, event *ResourceCreated) error
	Close() error
}

// Config holds NATS connection settings.
type Config struct {
	URL      string
	Name     string
	Subject  string
	User     string
	Password string
}

// New returns a NATS publisher, or a NopPublisher when no URL is configured.
func New(config *Config) (Publisher, error) {
	if config == nil || config.URL == "" {
		return NopPublisher{}, nil
	}

	return NewNATSPublisher(config)
}

// NATSPublisher publishes events as JSON on a NATS subject.
type NATSPublisher struct {
	nc      *nats.Conn
	subject string
}

// NewNATSPublisher connects to the configured server.
func NewNATSPublisher(config *Config) (*NATSPublisher, error) {
	name := config.Name
	if name == "" {
		name = constants.EventClientName
	}

	subject := config.Subject
	if subject == "" {
		subject = constants.DefaultEventSubject
	}

	opts := []nats.Option{
		nats.Name(name),
		nats.Timeout(constants.EventFlushTimeout),
		nats.MaxReconnects(0),
	}

	if config.User != "" && config.Password != "" {
		opts = append(opts, nats.UserInfo(config.User, config.Password))
	}

	nc, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return &NATSPublisher{nc: nc, subject: subject}, nil
}

// PublishCreated publishes event and waits until the server has received it.
func (p *NATSPublisher) PublishCreated(ctx context.Context, event *ResourceCreated) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	err = p.nc.Publish(p.subject+"."+event.Resource, data)
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, constants.EventFlushTimeout)
		defer cancel()
	}

	err = p.nc.FlushWithContext(ctx)
	if err != nil {
		return fmt.Errorf("flushing event: %w", err)
	}

	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() error {
	err := p.nc.Drain()
	if err != nil {
		p.nc.Close()

		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) PublishCreated(context.Context, *ResourceCreated) error { return nil }

func (NopPublisher) Close() error { return nil }
