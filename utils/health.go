package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of the service and its optional cache.
type HealthStatus struct {
	Dataset   bool      `json:"dataset"`
	Cache     *bool     `json:"cache,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// SetDatasetHealthy records whether the seed dataset loaded.
func SetDatasetHealthy(ok bool) {
	mu.Lock()
	currentHealth.Dataset = ok
	currentHealth.CheckedAt = time.Now()
	mu.Unlock()
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// A nil cache client means the cache is disabled and is left out of the snapshot.
func StartHealthMonitor(cacheClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var cacheHealth *bool
			if cacheClient != nil {
				ok := cacheClient.Ping(ctx).Err() == nil
				cacheHealth = &ok
			}

			mu.Lock()
			currentHealth.Cache = cacheHealth
			currentHealth.CheckedAt = time.Now()
			mu.Unlock()
		}
	}()
}
