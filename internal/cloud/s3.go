package cloud

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// URLExpiry is how long a presigned sheet download stays valid.
const URLExpiry = time.Hour

type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	s3.ListObjectsV2APIClient
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store keeps exported calculation sheets in a bucket. Calls go through a
// circuit breaker so an unreachable bucket fails fast instead of stalling
// every export request.
type S3Store struct {
	svc     objectAPI
	presign presignAPI
	bucket  string
	cb      *gobreaker.CircuitBreaker
}

// NewS3Store loads the default AWS credential chain for region.
func NewS3Store(ctx context.Context, region, bucket string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	svc := s3.NewFromConfig(cfg)
	return newS3Store(svc, s3.NewPresignClient(svc), bucket), nil
}

func newS3Store(svc objectAPI, presign presignAPI, bucket string) *S3Store {
	return &S3Store{
		svc:     svc,
		presign: presign,
		bucket:  bucket,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:     "s3-sheets",
			Interval: time.Minute,
			Timeout:  30 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			},
		}),
	}
}

// Put uploads body under key and returns a presigned download URL.
func (c *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	out, err := c.cb.Execute(func() (interface{}, error) {
		_, err := c.svc.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(c.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String(contentType),
			Metadata: map[string]string{
				"uploaded-at": time.Now().UTC().Format(time.RFC3339),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload to S3: %w", err)
		}

		req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(c.bucket),
			Key:    aws.String(key),
		}, func(opts *s3.PresignOptions) {
			opts.Expires = URLExpiry
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
		}
		return req.URL, nil
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// List returns every key under prefix.
func (c *S3Store) List(ctx context.Context, prefix string) ([]string, error) {
	out, err := c.cb.Execute(func() (interface{}, error) {
		paginator := s3.NewListObjectsV2Paginator(c.svc, &s3.ListObjectsV2Input{
			Bucket: aws.String(c.bucket),
			Prefix: aws.String(prefix),
		})
		keys := []string{}
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list objects: %w", err)
			}
			for _, obj := range page.Contents {
				keys = append(keys, aws.ToString(obj.Key))
			}
		}
		return keys, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]string), nil
}
