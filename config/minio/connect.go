package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"polaris-api/config"
	miniopkg "polaris-api/pkg/minio"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultMaxRetries     = 3
)

var (
	instance miniopkg.MinIO
	mu       sync.RWMutex
)

// Connect returns the shared MinIO client and makes sure the export bucket
// exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (miniopkg.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	impl, err := miniopkg.NewMinIO(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := impl.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := impl.EnsureBucket(connectCtx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to prepare bucket %s: %w", cfg.Bucket, err)
	}

	instance = impl
	return instance, nil
}

// ConnectWithRetry retries Connect with exponential backoff.
func ConnectWithRetry(ctx context.Context, cfg config.MinIOConfig, maxRetries int) (miniopkg.MinIO, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		client, err := Connect(ctx, cfg)
		if err == nil {
			return client, nil
		}
		lastErr = err

		if i < maxRetries-1 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MinIO client not initialized")
	}
	return instance.HealthCheck(ctx)
}

func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
