package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctor-directory/config"

	"github.com/redis/go-redis/v9"
)

// ErrSnapshotMissing is returned when no doctor payload has been mirrored yet.
var ErrSnapshotMissing = errors.New("doctor snapshot not found")

// DoctorSnapshotKey is the Redis key holding the last fetched payload.
const DoctorSnapshotKey = "doctor-directory:snapshot"

const pingTimeout = 5 * time.Second

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// SnapshotMirror keeps a copy of the raw doctor payload in Redis so a
// restart can still show the last known list when the source is down.
type SnapshotMirror struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewSnapshotMirror(client *redis.Client, ttl time.Duration) *SnapshotMirror {
	return &SnapshotMirror{
		client: client,
		key:    DoctorSnapshotKey,
		ttl:    ttl,
	}
}

func (m *SnapshotMirror) Save(ctx context.Context, payload []byte) error {
	if err := m.client.Set(ctx, m.key, payload, m.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (m *SnapshotMirror) Load(ctx context.Context) ([]byte, error) {
	payload, err := m.client.Get(ctx, m.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotMissing
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return payload, nil
}
