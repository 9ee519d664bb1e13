package dungeonrun

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/errors"
	"github.com/ironvale/guild-api/internal/pkg/clock"
	redisclient "github.com/ironvale/guild-api/internal/redis"
)

const (
	// Key pattern: dungeon_run:{run_id}
	runKeyPrefix = "dungeon_run:"

	// Terminal runs stay readable for a while, then expire
	terminalTTL = 24 * time.Hour

	errRunNil     = "run cannot be nil"
	errRunIDEmpty = "run ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for dungeon runs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new run, failing if the ID is already taken
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Run == nil {
		return nil, errors.InvalidArgument(errRunNil)
	}
	if input.Run.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	now := r.clock.Now()
	input.Run.CreatedAt = now
	input.Run.UpdatedAt = now

	runJSON, err := json.Marshal(input.Run)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal run")
	}

	key := r.buildKey(input.Run.ID)
	set, err := r.client.SetNX(ctx, key, runJSON, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store run in Redis")
	}
	if !set {
		return nil, errors.AlreadyExists("dungeon run already exists: " + input.Run.ID)
	}

	return &CreateOutput{
		Run: input.Run,
	}, nil
}

// Get retrieves a run by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := r.buildKey(input.RunID)

	runJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("dungeon run not found: " + input.RunID)
		}
		return nil, errors.Wrapf(err, "failed to get run from Redis")
	}

	var run entities.DungeonRunState
	if err := json.Unmarshal([]byte(runJSON), &run); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal run")
	}

	return &GetOutput{
		Run: &run,
	}, nil
}

// Update replaces an existing run. Terminal runs pick up an expiry so
// finished state does not accumulate forever.
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Run == nil {
		return nil, errors.InvalidArgument(errRunNil)
	}
	if input.Run.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := r.buildKey(input.Run.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check run existence")
	}
	if exists == 0 {
		return nil, errors.NotFound("dungeon run not found: " + input.Run.ID)
	}

	input.Run.UpdatedAt = r.clock.Now()

	runJSON, err := json.Marshal(input.Run)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal run")
	}

	var ttl time.Duration
	if input.Run.Terminal() {
		ttl = terminalTTL
	}
	if err := r.client.Set(ctx, key, runJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update run in Redis")
	}

	return &UpdateOutput{
		Run: input.Run,
	}, nil
}

// Delete removes a run
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := r.buildKey(input.RunID)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete run from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFound("dungeon run not found: " + input.RunID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) buildKey(runID string) string {
	return runKeyPrefix + runID
}
