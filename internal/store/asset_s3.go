package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// s3KeyPrefix groups uploaded images inside the bucket.
const s3KeyPrefix = "uploads/"

// s3API is the subset of [s3.Client] used by the asset storage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3AssetStorage keeps assets as objects of an S3 compatible bucket.
type s3AssetStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// NewS3AssetStorage returns an [AssetStorage] backed by the bucket described
// in cfg. Static credentials are used when an access key is configured,
// otherwise the default AWS credential chain applies. A custom endpoint
// (MinIO, localstack) replaces the regional AWS endpoint.
func NewS3AssetStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (AssetStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewS3AssetStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 asset storage")
	return newS3AssetStorage(client, cfg.Bucket, logger), nil
}

func newS3AssetStorage(client s3API, bucket string, logger *logger.Logger) *s3AssetStorage {
	return &s3AssetStorage{client: client, bucket: bucket, logger: logger}
}

func (s *s3AssetStorage) Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) error {
	if err := validateAssetName(name); err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s3KeyPrefix + name),
		Body:        content,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3AssetStorage.Save").Str("key", name).Msg("error putting object")
		return fmt.Errorf("error saving asset %q: %w", name, err)
	}

	return nil
}

func (s *s3AssetStorage) Open(ctx context.Context, name string) (io.ReadCloser, models.AssetInfo, error) {
	if err := validateAssetName(name); err != nil {
		return nil, models.AssetInfo{}, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3KeyPrefix + name),
	})
	if isS3NotFound(err) {
		return nil, models.AssetInfo{}, ErrAssetNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3AssetStorage.Open").Str("key", name).Msg("error getting object")
		return nil, models.AssetInfo{}, fmt.Errorf("error opening asset %q: %w", name, err)
	}

	info := models.AssetInfo{
		Name:        name,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}
	if info.ContentType == "" {
		info.ContentType = contentTypeByName(name)
	}

	return out.Body, info, nil
}

// Delete removes the object. S3 deletes are idempotent, so the object is
// looked up first to report [ErrAssetNotFound].
func (s *s3AssetStorage) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if err := validateAssetName(name); err != nil {
		return err
	}

	key := aws.String(s3KeyPrefix + name)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(s.bucket), Key: key})
	if isS3NotFound(err) {
		return ErrAssetNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*s3AssetStorage.Delete").Str("key", name).Msg("error looking up object")
		return fmt.Errorf("error looking up asset %q: %w", name, err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: aws.String(s.bucket), Key: key}); err != nil {
		log.Err(err).Str("func", "*s3AssetStorage.Delete").Str("key", name).Msg("error deleting object")
		return fmt.Errorf("error removing asset %q: %w", name, err)
	}

	return nil
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}

	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	return errors.As(err, &notFound) || errors.As(err, &noSuchKey)
}
