// Package bucket uploads a rendered site directory to an object storage
// bucket, preserving the relative directory structure as the object key
// prefix.
package bucket

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store is the object storage collaborator: upload a file under a key with a
// content type, overwriting any existing object. There is deliberately no
// delete - publishing is additive only.
type Store interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) error
}

// S3 is a Store backed by one AWS S3 bucket.
type S3 struct {
	bucket string
	client *s3.Client
}

// NewS3 authenticates against AWS using the named shared-config profile and
// returns a Store for the bucket.
func NewS3(ctx context.Context, profile string, bucket string) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithSharedConfigProfile(profile))
	if err != nil {
		return nil, fmt.Errorf("AWS authentication/authorization error (%v)", err)
	}

	return &S3{
		bucket: bucket,
		client: s3.NewFromConfig(cfg),
	}, nil
}

func (s *S3) Put(ctx context.Context, key string, contentType string, body io.Reader) error {
	rq := s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}

	if _, err := s.client.PutObject(ctx, &rq); err != nil {
		return err
	}

	return nil
}
