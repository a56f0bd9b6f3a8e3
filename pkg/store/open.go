package store

import (
	"context"

	"github.com/blockforge/blockforge/pkg/config"
	"github.com/blockforge/blockforge/pkg/errors"
)

// Open creates the snapshot store backend named by cfg.Store:
// "file", "redis", or "mongo".
func Open(ctx context.Context, cfg config.Server) (Store, error) {
	switch cfg.Store {
	case "file":
		return NewFileStore(cfg.StoreDir)
	case "redis":
		return NewRedisStore(ctx, cfg.RedisURL)
	case "mongo":
		return NewMongoStore(ctx, cfg.MongoURL, cfg.MongoDB)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q (want file, redis, or mongo)", cfg.Store)
	}
}
