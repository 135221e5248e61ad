package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	appConfig "product-spec-api/internal/config"
	"product-spec-api/internal/metrics"
)

// ReportExporter defines the interface for persisting migration run
// reports to object storage
type ReportExporter interface {
	// ExportReport uploads a JSON report and returns its object URL.
	ExportReport(ctx context.Context, report any) (string, error)
}

// s3ReportExporter implements ReportExporter on top of AWS S3
type s3ReportExporter struct {
	client  *s3.Client
	bucket  string
	region  string
	prefix  string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewReportExporter creates an S3-backed report exporter. An endpoint
// in the config switches to path-style addressing with static
// credentials, for local MinIO setups.
func NewReportExporter(cfg *appConfig.S3Config, logger *zap.Logger, m *metrics.Metrics) (ReportExporter, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for a custom endpoint")
		}
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
			config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:               cfg.Endpoint,
						HostnameImmutable: true,
						SigningRegion:     cfg.Region,
					}, nil
				},
			)),
		)
	} else {
		// Default credential chain: IAM role on EC2, local profile
		// otherwise.
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true
		}
	})

	prefix := cfg.ReportPrefix
	if prefix == "" {
		prefix = "migration-reports"
	}

	return &s3ReportExporter{
		client:  s3Client,
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		prefix:  strings.Trim(prefix, "/"),
		logger:  logger,
		metrics: m,
	}, nil
}

// ExportReport serializes the report and uploads it under a
// timestamped key
func (e *s3ReportExporter) ExportReport(ctx context.Context, report any) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", e.prefix, time.Now().UTC().Format("2006-01-02T15-04-05Z"))

	start := time.Now()
	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if e.metrics != nil {
		statusCode := 200
		if err != nil {
			statusCode = 0
		}
		e.metrics.RecordExternalAPICall("s3:PutObject", "PUT", statusCode, time.Since(start), err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to upload report to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", e.bucket, e.region, key)
	e.logger.Info("exported migration report",
		zap.String("bucket", e.bucket),
		zap.String("key", key),
	)
	return url, nil
}
