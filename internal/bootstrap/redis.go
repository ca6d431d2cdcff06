package bootstrap

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnflow/resource-enhancer/internal/config"
	"github.com/learnflow/resource-enhancer/internal/logger"
	"github.com/learnflow/resource-enhancer/internal/progress"
)

const redisPingTimeout = 5 * time.Second

// SetupProgressStore creates the milestone progress store if Redis is
// enabled. Returns nil when Redis is disabled or unreachable; the service
// then runs without progress persistence.
func SetupProgressStore(cfg *config.Config, log logger.Logger) *progress.Store {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis not available, progress persistence disabled",
			logger.String("redis_address", cfg.Redis.Address),
			logger.Error(err),
		)
		return nil
	}

	log.Info("Progress store initialized",
		logger.String("redis_address", cfg.Redis.Address),
	)
	return progress.NewStore(client, log)
}
