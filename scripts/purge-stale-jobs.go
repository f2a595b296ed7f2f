package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Just enough of the job record to judge its state
type jobData struct {
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

const staleAfter = 2 * time.Hour

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for stale generation jobs...")

	iter := client.Scan(ctx, 0, "generation_job:*", 0).Iterator()

	var staleKeys []string
	var checkedCount int
	cutoff := time.Now().Add(-staleAfter).Unix()

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var job jobData
		if err := json.Unmarshal([]byte(data), &job); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			staleKeys = append(staleKeys, key)
			continue
		}

		// A job still queued or processing long past any plausible
		// generation time means its worker died mid-flight
		if job.Status != "completed" && job.Status != "failed" && job.CreatedAt < cutoff {
			fmt.Printf("✗ Stale %s job in %s (created %s)\n",
				job.Status, key, time.Unix(job.CreatedAt, 0).Format(time.RFC3339))
			staleKeys = append(staleKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d stale entries\n", checkedCount, len(staleKeys))

	if len(staleKeys) == 0 {
		fmt.Println("No stale jobs found!")
		return
	}

	fmt.Println("\nStale keys:")
	for _, key := range staleKeys {
		fmt.Printf("  - %s\n", key)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these stale jobs? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range staleKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
