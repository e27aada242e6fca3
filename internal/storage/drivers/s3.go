package drivers

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/grp1-tf-cp2/todo-lambda/internal/logger"
	"golang.org/x/net/http2"
)

const defaultS3CompatibleRegion = "us-east-1"

// S3HTTPConfig tunes the HTTP transport used for S3 connections.
// Zero values fall back to the defaults below. There is no overall request
// timeout: the invocation deadline on ctx bounds each read.
type S3HTTPConfig struct {
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	ConnectTimeout        time.Duration
	ResponseHeaderTimeout time.Duration
}

type S3Options struct {
	Region    string // empty: resolved by the SDK default chain
	AccessKey string
	SecretKey string
	BaseURL   string // custom endpoint for S3-compatible storage (LocalStack, MinIO)
	HTTP      *S3HTTPConfig
}

type S3Client struct {
	client *s3.Client
}

func newHTTPClient(httpConfig *S3HTTPConfig) *http.Client {
	maxIdleConns := 100
	maxIdleConnsPerHost := 100
	idleConnTimeout := 90 * time.Second
	connectTimeout := 10 * time.Second
	responseHeaderTimeout := 10 * time.Second

	if httpConfig != nil {
		if httpConfig.MaxIdleConns > 0 {
			maxIdleConns = httpConfig.MaxIdleConns
		}
		if httpConfig.MaxIdleConnsPerHost > 0 {
			maxIdleConnsPerHost = httpConfig.MaxIdleConnsPerHost
		}
		if httpConfig.IdleConnTimeout > 0 {
			idleConnTimeout = httpConfig.IdleConnTimeout
		}
		if httpConfig.ConnectTimeout > 0 {
			connectTimeout = httpConfig.ConnectTimeout
		}
		if httpConfig.ResponseHeaderTimeout > 0 {
			responseHeaderTimeout = httpConfig.ResponseHeaderTimeout
		}
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          maxIdleConns,
		MaxIdleConnsPerHost:   maxIdleConnsPerHost,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: responseHeaderTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	if err := http2.ConfigureTransport(transport); err != nil {
		logger.Warnf("[S3 Storage] Failed to configure HTTP/2: %v", err)
	}

	logger.Debugf("[S3 Storage] HTTP client configured: MaxIdleConns=%d, MaxIdleConnsPerHost=%d, ConnectTimeout=%s, ResponseHeaderTimeout=%s",
		maxIdleConns, maxIdleConnsPerHost, connectTimeout, responseHeaderTimeout)

	return &http.Client{Transport: transport}
}

func NewS3Client(ctx context.Context, opts S3Options) (*S3Client, error) {
	httpClient := newHTTPClient(opts.HTTP)

	if opts.BaseURL != "" {
		region := opts.Region
		if region == "" {
			region = defaultS3CompatibleRegion
		}
		logger.Infof("[S3 Storage] Initializing S3-compatible storage: endpoint=%s, region=%s", opts.BaseURL, region)
		// Skip the default loader so no AWS-specific credential lookup happens
		client := s3.New(s3.Options{
			Region:       region,
			Credentials:  credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
			BaseEndpoint: aws.String(opts.BaseURL),
			UsePathStyle: true,
			HTTPClient:   httpClient,
		})
		return &S3Client{client: client}, nil
	}

	configOpts := []func(*config.LoadOptions) error{
		config.WithHTTPClient(httpClient),
	}
	if opts.Region != "" {
		configOpts = append(configOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		configOpts = append(configOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	logger.Infof("[S3 Storage] Initializing AWS S3 storage: region=%s", cfg.Region)
	return &S3Client{client: s3.NewFromConfig(cfg)}, nil
}

func (s *S3Client) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	logger.Debugf("[S3 Storage] Fetching object: bucket=%s, key=%s", bucket, key)
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Errorf("[S3 Storage] Error fetching object: bucket=%s, key=%s, error=%v", bucket, key, err)
		return nil, err
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		logger.Errorf("[S3 Storage] Error reading object body: bucket=%s, key=%s, error=%v", bucket, key, err)
		return nil, err
	}
	logger.Debugf("[S3 Storage] Fetched object: bucket=%s, key=%s, size=%d bytes", bucket, key, len(data))
	return data, nil
}
