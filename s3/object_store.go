// Package s3 implements the object store against AWS S3.
package s3

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raguno/raguno"
)

var _ raguno.ObjectStore = (*ObjectStore)(nil)

// ObjectStore writes objects into a single shared bucket.
type ObjectStore struct {
	client *awss3.Client
	bucket string
}

// NewObjectStore returns an ObjectStore scoped to the given bucket.
func NewObjectStore(cfg aws.Config, bucket string) *ObjectStore {
	return &ObjectStore{
		client: awss3.NewFromConfig(cfg),
		bucket: bucket,
	}
}

// PutObject writes body under key, overwriting any existing object.
func (s *ObjectStore) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}
