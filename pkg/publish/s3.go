package publish

import (
	"bytes"
	"context"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/displaycard/internal/errors"
)

// CacheControl is sent with uploaded pages. The page embeds a live product
// listing, so it is only briefly cacheable.
const CacheControl = "public, max-age=300"

// S3API is the subset of the S3 client used to upload pages.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads pages to an S3 bucket.
type S3Publisher struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Publisher creates an S3Publisher. Keys are prefix/name.
func NewS3Publisher(client S3API, bucket, prefix string) (*S3Publisher, error) {
	if bucket == "" {
		return nil, errors.New(errors.CodePublishTarget).WithDetail("no S3 bucket")
	}
	return &S3Publisher{client: client, bucket: bucket, prefix: prefix}, nil
}

// NewS3Client builds an S3 client for region with credentials from the
// standard AWS_* environment variables.
func NewS3Client(region string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	})
}

func envCredentials(ctx context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New(errors.CodePublishUpload).
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")
	}
	return creds, nil
}

// Key returns the object key for name.
func (p *S3Publisher) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Publish uploads body and returns its s3:// URL.
func (p *S3Publisher) Publish(ctx context.Context, name string, body []byte) (string, error) {
	if name == "" {
		return "", errors.New(errors.CodePublishTarget).WithDetail("empty object name")
	}
	key := p.Key(name)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(ContentType),
		CacheControl: aws.String(CacheControl),
		Metadata: map[string]string{
			"generator": "displaycard",
		},
	})
	if err != nil {
		return "", errors.New(errors.CodePublishUpload).WithDetailf("s3://%s/%s", p.bucket, key).Wrap(err)
	}
	return "s3://" + p.bucket + "/" + key, nil
}
