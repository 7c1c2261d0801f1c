package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type CloudflareR2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	// Prefix is prepended to every object key, e.g. "arbitro/".
	Prefix string
	// Endpoint overrides the account endpoint (S3-compatible test servers).
	Endpoint string
}

type r2Store struct {
	s3Client   *s3.Client
	bucketName string
	prefix     string
}

// NewCloudflareR2Store stores each value as one object in an R2 bucket.
func NewCloudflareR2Store(ctx context.Context, cfg CloudflareR2Config) (Store, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.BucketName == "" {
		return nil, errors.New("invalid Cloudflare R2 configuration: access key, secret and bucket are required")
	}
	if cfg.AccountID == "" && cfg.Endpoint == "" {
		return nil, errors.New("invalid Cloudflare R2 configuration: account id or endpoint is required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:           endpoint,
			SigningRegion: "auto",
		}, nil
	})

	sdkCfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config for R2: %w", err)
	}

	return &r2Store{
		s3Client: s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
			o.UsePathStyle = cfg.Endpoint != ""
		}),
		bucketName: cfg.BucketName,
		prefix:     cfg.Prefix,
	}, nil
}

func (s *r2Store) objectKey(key string) string {
	return s.prefix + key
}

func (s *r2Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isMissingObject(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get object from R2 (key: %s): %w", key, err)
	}
	defer out.Body.Close()

	value, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body from R2 (key: %s): %w", key, err)
	}
	return value, nil
}

func (s *r2Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object to R2 (key: %s): %w", key, err)
	}
	return nil
}

func (s *r2Store) Delete(ctx context.Context, key string) error {
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil && !isMissingObject(err) {
		return fmt.Errorf("failed to delete object from R2 (key: %s): %w", key, err)
	}
	return nil
}

func (s *r2Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucketName),
		Prefix: aws.String(s.objectKey(prefix)),
	})

	keys := []string{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in R2 (prefix: %s): %w", prefix, err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil {
				keys = append(keys, strings.TrimPrefix(*obj.Key, s.prefix))
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func isMissingObject(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound"
	}
	return false
}
