package config

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// imagePrefix is the key prefix under which recipe images are stored.
const imagePrefix = "recipe-images/"

// S3API is the subset of the S3 client the image store needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client        S3API
	BucketName    string
	PublicBaseURL string
}

// NewS3Config initializes the S3 client from cfg and the default AWS
// credential chain.
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &S3Config{
		Client:        s3.NewFromConfig(awsCfg),
		BucketName:    cfg.S3Bucket,
		PublicBaseURL: cfg.S3PublicBaseURL,
	}, nil
}

// Upload stores body under recipe-images/{name} and returns its public URL.
func (s *S3Config) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := imagePrefix + name
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return s.PublicURL(key), nil
}

// PublicURL builds the public URL of an object key.
func (s *S3Config) PublicURL(key string) string {
	escaped := escapeKey(key)
	if s.PublicBaseURL != "" {
		return s.PublicBaseURL + "/" + escaped
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.BucketName, escaped)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
