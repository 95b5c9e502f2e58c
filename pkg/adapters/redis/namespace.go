package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/dynurl/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Namespace implements ports.MutableNamespace on top of Redis.
// Each root name is one key holding a JSON document.
type Namespace struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Namespace)

// WithTTL sets the expiration applied by Set.
func WithTTL(ttl time.Duration) Option {
	return func(n *Namespace) {
		n.ttl = ttl
	}
}

// WithPrefix sets the key prefix for namespace entries.
func WithPrefix(prefix string) Option {
	return func(n *Namespace) {
		n.prefix = prefix
	}
}

// New creates a new Redis namespace with options.
func New(address, password string, db int, opts ...Option) *Namespace {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis namespace from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Namespace {
	ns := &Namespace{
		client: client,
		prefix: "dynurl:ns:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(ns)
	}

	return ns
}

func (n *Namespace) key(name string) string {
	return n.prefix + name
}

// Lookup reads and decodes the document bound to name.
// Numbers are decoded as json.Number so large identifiers keep every digit.
func (n *Namespace) Lookup(ctx context.Context, name string) (any, bool, error) {
	val, err := n.client.Get(ctx, n.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: failed to get from redis: %w", domain.ErrNamespaceUnavailable, err)
	}

	dec := json.NewDecoder(bytes.NewReader(val))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal %q: %w", name, err)
	}
	return v, true, nil
}

// Set stores value as JSON under name.
func (n *Namespace) Set(ctx context.Context, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", name, err)
	}
	if err := n.client.Set(ctx, n.key(name), data, n.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Delete removes name.
func (n *Namespace) Delete(ctx context.Context, name string) error {
	return n.client.Del(ctx, n.key(name)).Err()
}

// Ping checks connectivity for GET /health.
func (n *Namespace) Ping(ctx context.Context) error {
	return n.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (n *Namespace) Close() error {
	return n.client.Close()
}
