package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/meettonyg/guestify-backend/internal/logger"
)

// GenerationEvent announces that AI copy generation finished for a record,
// so UI listeners can refresh without polling.
type GenerationEvent struct {
	RecordID uuid.UUID `json:"record_id"`
	Kind     string    `json:"kind"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
}

type Notifier interface {
	Publish(ctx context.Context, evt GenerationEvent) error
	Close() error
}

type notifier struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewNotifier(log *logger.Logger) (Notifier, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ch := strings.TrimSpace(os.Getenv("REDIS_CHANNEL"))
	if ch == "" {
		ch = "generation"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &notifier{
		log:     log.With("service", "RedisNotifier"),
		rdb:     rdb,
		channel: ch,
	}, nil
}

func (n *notifier) Publish(ctx context.Context, evt GenerationEvent) error {
	if n == nil || n.rdb == nil {
		return fmt.Errorf("redis notifier not initialized")
	}
	raw, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, n.channel, raw).Err()
}

func (n *notifier) Close() error {
	if n == nil || n.rdb == nil {
		return nil
	}
	return n.rdb.Close()
}

// NoopNotifier keeps wiring simple when redis is not configured.
type NoopNotifier struct{}

func (NoopNotifier) Publish(context.Context, GenerationEvent) error { return nil }
func (NoopNotifier) Close() error                                   { return nil }
