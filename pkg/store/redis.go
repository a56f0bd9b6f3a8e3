package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/io"
)

// keyPrefix namespaces snapshot keys so the store can share a Redis
// database with other applications.
const keyPrefix = "blockforge:snapshot:"

// RedisStore keeps snapshots as JSON values in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance described by url
// (e.g. "redis://localhost:6379/0") and verifies the connection.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func key(name string) string { return keyPrefix + name }

// Save stores the document under name, preserving CreatedAt when the
// snapshot already exists.
func (s *RedisStore) Save(ctx context.Context, name string, doc io.Document) (Snapshot, error) {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return Snapshot{}, err
	}

	var prev *Snapshot
	if existing, err := s.Load(ctx, name); err == nil {
		prev = &existing
	}

	snap := stamp(name, doc, prev)
	data, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode snapshot %s: %w", name, err)
	}
	if err := s.client.Set(ctx, key(name), data, 0).Err(); err != nil {
		return Snapshot{}, fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return snap, nil
}

// Load retrieves the snapshot stored under name.
func (s *RedisStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return Snapshot{}, err
	}

	data, err := s.client.Get(ctx, key(name)).Bytes()
	if err == redis.Nil {
		return Snapshot{}, notFound(name)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot %s: %w", name, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeMalformedSnapshot, err, "decode snapshot %s", name)
	}
	return snap, nil
}

// List scans the snapshot key namespace and returns metadata sorted by
// name. SCAN is used instead of KEYS so large databases aren't blocked.
func (s *RedisStore) List(ctx context.Context) ([]Info, error) {
	var infos []Info
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		name := iter.Val()[len(keyPrefix):]
		snap, err := s.Load(ctx, name)
		if err != nil {
			continue
		}
		infos = append(infos, infoOf(snap))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Delete removes the snapshot stored under name.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return err
	}
	n, err := s.client.Del(ctx, key(name)).Result()
	if err != nil {
		return fmt.Errorf("delete snapshot %s: %w", name, err)
	}
	if n == 0 {
		return notFound(name)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
