package emit

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/taghelper/pkg/fragment"
)

// S3API is the subset of the S3 client the sink uses. *s3.Client
// satisfies it; tests supply a fake.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink accumulates emitted output and publishes it as a single S3
// object, for pipelines that render pages ahead of time and serve them
// statically.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	sink := emit.NewS3Sink(s3.NewFromConfig(cfg), "my-bucket", "pages/index.html")
//	buf.Emit(sink)
//	err := sink.Publish(ctx)
type S3Sink struct {
	client      S3API
	bucket      string
	key         string
	contentType string
	body        bytes.Buffer
}

// NewS3Sink creates a sink that publishes to bucket/key. The content type
// defaults to "text/html; charset=utf-8".
func NewS3Sink(client S3API, bucket, key string) *S3Sink {
	return &S3Sink{
		client:      client,
		bucket:      bucket,
		key:         key,
		contentType: "text/html; charset=utf-8",
	}
}

// WithContentType sets the published object's content type.
func (s *S3Sink) WithContentType(ct string) *S3Sink {
	s.contentType = ct
	return s
}

// RawWrite implements fragment.Sink.
func (s *S3Sink) RawWrite(f *fragment.Fragment) error {
	_, err := f.WriteTo(&s.body)
	return err
}

// Len returns the number of bytes accumulated so far.
func (s *S3Sink) Len() int {
	return s.body.Len()
}

// Publish uploads the accumulated output. The sink keeps its content, so
// Publish can be retried on failure.
func (s *S3Sink) Publish(ctx context.Context) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(s.body.Bytes()),
		ContentType: aws.String(s.contentType),
		Metadata: map[string]string{
			"rendered-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("s3 publish failed: %w", err)
	}
	return nil
}
