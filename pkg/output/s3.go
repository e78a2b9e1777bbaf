package output

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// UploadTimeout bounds a single S3 upload
const UploadTimeout = 10 * time.Second

// S3Config holds the connection settings for an S3-compatible bucket
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// S3Uploader publishes rendered images to a bucket
type S3Uploader struct {
	client s3iface.S3API
	bucket string
	logger core.Logger
}

// NewS3Uploader creates an uploader with static credentials and path-style addressing
func NewS3Uploader(cfg S3Config, logger core.Logger) (*S3Uploader, error) {
	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3UploaderWithClient(s3.New(sess), cfg.Bucket, logger), nil
}

// NewS3UploaderWithClient creates an uploader over an existing client
func NewS3UploaderWithClient(client s3iface.S3API, bucket string, logger core.Logger) *S3Uploader {
	if logger == nil {
		logger = core.NopLogger()
	}
	return &S3Uploader{client: client, bucket: bucket, logger: logger}
}

// Upload stores data under key as a public object
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return nil
}
