package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
)

func TestRedisOptions(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		wantAddr string
		wantDB   int
		wantErr  bool
	}{
		{name: "host and port", address: "localhost:6379", wantAddr: "localhost:6379"},
		{name: "url with db", address: "redis://cache:6380/2", wantAddr: "cache:6380", wantDB: 2},
		{name: "bad url", address: "redis://cache:6380/not-a-db", wantErr: true},
		{name: "empty", address: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := redisOptions(tt.address)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, opts.Addr)
			assert.Equal(t, tt.wantDB, opts.DB)
		})
	}
}

func TestWineCacheKey(t *testing.T) {
	wine := sampleWine()
	assert.Equal(t, "wine:"+wine.ID.String(), wineCacheKey(wine.ID))
}

func TestDecodeCachedWine(t *testing.T) {
	wine := sampleWine()
	payload, err := json.Marshal(wine)
	require.NoError(t, err)

	got, err := decodeCachedWine(payload)
	require.NoError(t, err)
	assert.Equal(t, wine, got)

	_, err = decodeCachedWine([]byte(`{"id":`))
	assert.ErrorIs(t, err, ErrCacheCorrupted)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := NewRedisClient(ctx, "127.0.0.1:1", logger.Nop())

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}
