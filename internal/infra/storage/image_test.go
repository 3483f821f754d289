package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
	"github.com/BruksfildServices01/parlour-booking/internal/logger"
)

func ptr(s string) *string { return &s }

func TestStaticResolver(t *testing.T) {
	ctx := context.Background()
	r := NewStaticResolver("https://cdn.velura.test/img/")

	assert.Nil(t, r.Resolve(ctx, nil))
	assert.Equal(t, "https://cdn.velura.test/img/salon1.jpg", *r.Resolve(ctx, ptr("salon1.jpg")))
	assert.Equal(t, "https://cdn.velura.test/img/a/b.png", *r.Resolve(ctx, ptr("/a/b.png")))
	assert.Equal(t, "http://elsewhere/x.jpg", *r.Resolve(ctx, ptr("http://elsewhere/x.jpg")))
}

func TestStaticResolver_NoBase(t *testing.T) {
	r := NewStaticResolver("")
	assert.Equal(t, "salon1.jpg", *r.Resolve(context.Background(), ptr("salon1.jpg")))
}

func TestS3Resolver_Presign(t *testing.T) {
	cfg := config.ImageConfig{
		S3Bucket:      "velura-images",
		S3Region:      "us-east-1",
		S3Endpoint:    "http://localhost:9000",
		S3AccessKeyID: "AKIDEXAMPLE",
		S3SecretKey:   "secret",
		S3PresignTTL:  10 * time.Minute,
	}

	r, err := NewS3Resolver(cfg, logger.Discard())
	require.NoError(t, err)

	got := r.Resolve(context.Background(), ptr("salon1.jpg"))
	require.NotNil(t, got)
	assert.True(t, strings.HasPrefix(*got, "http://localhost:9000/velura-images/salon1.jpg?"), *got)
	assert.Contains(t, *got, "X-Amz-Signature=")
	assert.Contains(t, *got, "X-Amz-Expires=600")

	assert.Nil(t, r.Resolve(context.Background(), nil))
}

func TestNewImageResolver(t *testing.T) {
	r, err := NewImageResolver(config.ImageConfig{BaseURL: "https://x"}, logger.Discard())
	require.NoError(t, err)
	assert.IsType(t, &StaticResolver{}, r)

	_, err = NewImageResolver(config.ImageConfig{S3Bucket: "b"}, logger.Discard())
	assert.Error(t, err, "bucket without credentials")
}
