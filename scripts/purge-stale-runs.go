package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Minimal shape to check run status without importing the module
type runData struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func main() {
	addr := os.Getenv("GUILD_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()

	keys, err := client.Keys(ctx, "dungeon_run:*").Result()
	if err != nil {
		log.Fatalf("failed to list runs: %v", err)
	}

	purged := 0
	for _, key := range keys {
		raw, err := client.Get(ctx, key).Result()
		if err != nil {
			log.Printf("skipping %s: %v", key, err)
			continue
		}

		var run runData
		if err := json.Unmarshal([]byte(raw), &run); err != nil {
			log.Printf("skipping %s: bad payload: %v", key, err)
			continue
		}

		if run.Status != "retreated" && run.Status != "completed" {
			continue
		}

		if err := client.Del(ctx, key).Err(); err != nil {
			log.Printf("failed to delete %s: %v", key, err)
			continue
		}
		purged++
	}

	fmt.Printf("purged %d of %d runs\n", purged, len(keys))
}
