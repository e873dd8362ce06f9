//go:build integration

package lock

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestRedisLocker_Integration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	client, err := Connect(context.Background(), url)
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer func() { _ = client.Close() }()

	locker := NewRedisLocker(client, 2*time.Second, slog.Default())
	impatient := NewRedisLocker(client, 200*time.Millisecond, slog.Default())

	release, err := locker.Lock(context.Background(), "integration")
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}

	if _, err := impatient.Lock(context.Background(), "integration"); !errors.Is(err, ErrNotAcquired) {
		t.Errorf("expected second Lock() to time out, got %v", err)
	}

	if err := release(context.Background()); err != nil {
		t.Fatalf("release error = %v", err)
	}

	again, err := locker.Lock(context.Background(), "integration")
	if err != nil {
		t.Fatalf("Lock() after release error = %v", err)
	}
	_ = again(context.Background())
}
