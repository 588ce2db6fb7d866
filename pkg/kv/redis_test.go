package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabinadmin/pkg/config"
)

func TestNewRedisClient_NoAddrDisables(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_UnreachableFails(t *testing.T) {
	// Port 1 on loopback refuses connections.
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
	assert.Nil(t, client)
}
