// Package progress persists milestone completion state for generated
// projects in Redis.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnflow/resource-enhancer/internal/logger"
)

// keyPrefix namespaces project hashes in Redis.
const keyPrefix = "progress:"

// Store reads and writes per-project milestone completion. Each project is
// one Redis hash mapping milestone id to its completion time.
type Store struct {
	client *redis.Client
	log    logger.Logger
}

// NewStore creates a Store. Returns nil if client is nil; a nil Store is a
// no-op so callers can run without Redis.
func NewStore(client *redis.Client, log logger.Logger) *Store {
	if client == nil {
		return nil
	}
	return &Store{client: client, log: log}
}

// Enabled reports whether the store is backed by a live client.
func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// SetCompletion marks a milestone completed or clears it.
func (s *Store) SetCompletion(ctx context.Context, projectID, milestoneID string, completed bool) error {
	if !s.Enabled() {
		return nil
	}

	key := keyPrefix + projectID
	var err error
	if completed {
		err = s.client.HSet(ctx, key, milestoneID, time.Now().UTC().Format(time.RFC3339)).Err()
	} else {
		err = s.client.HDel(ctx, key, milestoneID).Err()
	}
	if err != nil {
		return fmt.Errorf("set completion: %w", err)
	}

	s.log.Debug("Milestone completion updated",
		logger.String("project_id", projectID),
		logger.String("milestone_id", milestoneID),
		logger.Bool("completed", completed),
	)
	return nil
}

// Completions returns milestone id -> completion time for a project.
// Projects with no recorded progress yield an empty map.
func (s *Store) Completions(ctx context.Context, projectID string) (map[string]time.Time, error) {
	if !s.Enabled() {
		return map[string]time.Time{}, nil
	}

	raw, err := s.client.HGetAll(ctx, keyPrefix+projectID).Result()
	if err != nil {
		return nil, fmt.Errorf("read completions: %w", err)
	}

	out := make(map[string]time.Time, len(raw))
	for milestoneID, stamp := range raw {
		at, parseErr := time.Parse(time.RFC3339, stamp)
		if parseErr != nil {
			s.log.Warn("Skipping malformed completion timestamp",
				logger.String("project_id", projectID),
				logger.String("milestone_id", milestoneID),
			)
			continue
		}
		out[milestoneID] = at
	}
	return out, nil
}
