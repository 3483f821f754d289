package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipIfNoRedis(t *testing.T) string {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: TEST_REDIS_URL not set")
	}
	return url
}

func TestRedisDenylist(t *testing.T) {
	url := skipIfNoRedis(t)

	dl, err := NewRedisDenylist(url)
	require.NoError(t, err)
	defer func() { _ = dl.Close() }()

	ctx := context.Background()
	id := uuid.NewString()

	ok, err := dl.Contains(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, dl.Add(ctx, id, time.Minute))
	ok, err = dl.Contains(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewRedisDenylist_BadURL(t *testing.T) {
	_, err := NewRedisDenylist("")
	assert.Error(t, err)

	_, err = NewRedisDenylist("not-a-url://")
	assert.Error(t, err)
}
