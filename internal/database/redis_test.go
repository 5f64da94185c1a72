package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/zizouhuweidi/trivia/internal/config"
)

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectRedis(context.Background(), config.RedisConfig{Host: mr.Host(), Port: mr.Port()})
	if err != nil {
		t.Fatalf("ConnectRedis failed: %v", err)
	}
	defer client.Close()

	mr.Close()
	if _, err := ConnectRedis(context.Background(), config.RedisConfig{Host: mr.Host(), Port: mr.Port()}); err == nil {
		t.Fatalf("expected error once the server is gone")
	}
}
