// Package storage turns stored image references into URLs clients can fetch.
package storage

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
)

type ImageResolver interface {
	// Resolve returns nil for nil refs and leaves absolute URLs untouched.
	Resolve(ctx context.Context, ref *string) *string
}

func NewImageResolver(cfg config.ImageConfig, log *slog.Logger) (ImageResolver, error) {
	if cfg.S3Bucket != "" {
		return NewS3Resolver(cfg, log)
	}
	return NewStaticResolver(cfg.BaseURL), nil
}

func isAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// ======================================================
// Static base URL
// ======================================================

type StaticResolver struct {
	base string
}

// NewStaticResolver with an empty base returns references unchanged.
func NewStaticResolver(base string) *StaticResolver {
	return &StaticResolver{base: strings.TrimRight(base, "/")}
}

func (r *StaticResolver) Resolve(_ context.Context, ref *string) *string {
	if ref == nil || *ref == "" || r.base == "" || isAbsolute(*ref) {
		return ref
	}
	out := r.base + "/" + strings.TrimLeft(*ref, "/")
	return &out
}

// ======================================================
// S3 presigned GET
// ======================================================

type S3Resolver struct {
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration
	log       *slog.Logger
}

func NewS3Resolver(cfg config.ImageConfig, log *slog.Logger) (*S3Resolver, error) {
	if cfg.S3AccessKeyID == "" || cfg.S3SecretKey == "" {
		return nil, errors.New("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required when S3_BUCKET is set")
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretKey, ""),
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Resolver{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.S3Bucket,
		ttl:       cfg.S3PresignTTL,
		log:       log,
	}, nil
}

func (r *S3Resolver) Resolve(ctx context.Context, ref *string) *string {
	if ref == nil || *ref == "" || isAbsolute(*ref) {
		return ref
	}

	req, err := r.presigner.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(r.bucket),
			Key:    aws.String(strings.TrimLeft(*ref, "/")),
		},
		s3.WithPresignExpires(r.ttl),
	)
	if err != nil {
		r.log.Warn("image presign failed",
			slog.String("key", *ref),
			slog.Any("err", err),
		)
		return ref
	}

	return &req.URL
}
