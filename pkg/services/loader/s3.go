package loader

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const (
	KindS3 = "s3"

	defaultS3Region = "us-east-1"
)

// ObjectGetter is the subset of the S3 client used by the loader.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Loader struct {
	client ObjectGetter
	bucket string
	key    string
}

// NewS3Loader reads the dataset from an S3 bucket or any S3-compatible
// object store when Endpoint is set.
func NewS3Loader(ctx context.Context, cfg SourceConfig) (Loader, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("s3 source requires bucket and key")
	}

	region := cfg.Region
	if region == "" {
		region = defaultS3Region
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		if cfg.Anonymous {
			o.Credentials = aws.AnonymousCredentials{}
		}
	})
	return NewS3LoaderWithClient(client, cfg.Bucket, cfg.Key), nil
}

func NewS3LoaderWithClient(client ObjectGetter, bucket, key string) Loader {
	return &s3Loader{client: client, bucket: bucket, key: key}
}

func (l *s3Loader) Load(ctx context.Context) ([]domain.SalesRecord, LoadReport, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key),
	})
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("failed to get s3://%s/%s: %w", l.bucket, l.key, err)
	}
	defer out.Body.Close()

	return DecodeCSV(ctx, out.Body)
}
