package s3client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "goesfind/config"
)

// Client lists and fetches objects from the public NOAA buckets. Access is
// anonymous; no credentials are required.
type Client struct {
	s3Client *s3.Client
	config   *appConfig.Config

	mu     sync.Mutex
	listed map[string][]string
}

func New(cfg *appConfig.Config) (*Client, error) {
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	if cfg.ApiURL != "" {
		s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
			o.UsePathStyle = true
		})
	} else {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	return &Client{
		s3Client: s3Client,
		config:   cfg,
		listed:   make(map[string][]string),
	}, nil
}

// ListObjects returns all object keys under a prefix. Results are remembered
// per prefix; refresh forces a new listing instead of the remembered one.
func (c *Client) ListObjects(ctx context.Context, bucket, prefix string, refresh bool) ([]string, error) {
	cacheKey := bucket + "/" + prefix

	if !refresh {
		c.mu.Lock()
		keys, ok := c.listed[cacheKey]
		c.mu.Unlock()
		if ok {
			return keys, nil
		}
	}

	var keys []string

	paginator := s3.NewListObjectsV2Paginator(c.s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		for _, obj := range page.Contents {
			// Folder placeholder objects are of no interest
			if strings.HasSuffix(*obj.Key, "/") {
				continue
			}
			keys = append(keys, *obj.Key)
		}
	}

	c.mu.Lock()
	c.listed[cacheKey] = keys
	c.mu.Unlock()

	return keys, nil
}

// ListCommonPrefixes returns the top-level "directories" of a bucket, which
// for the NOAA buckets are the available product names.
func (c *Client) ListCommonPrefixes(ctx context.Context, bucket string) ([]string, error) {
	var prefixes []string

	paginator := s3.NewListObjectsV2Paginator(c.s3Client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Delimiter: aws.String("/"),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list prefixes: %w", err)
		}

		for _, p := range page.CommonPrefixes {
			prefixes = append(prefixes, strings.TrimSuffix(*p.Prefix, "/"))
		}
	}

	return prefixes, nil
}

// DownloadFile fetches a single object into the destination directory and
// returns the local path and size of the written file.
func (c *Client) DownloadFile(ctx context.Context, bucket, key, destination string) (string, int64, error) {
	if destination == "" {
		destination = "."
	}

	if err := os.MkdirAll(destination, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create destination directory: %w", err)
	}

	localPath := filepath.Join(destination, filepath.Base(key))

	file, err := os.Create(localPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file %s: %w", localPath, err)
	}
	defer file.Close()

	downloader := manager.NewDownloader(c.s3Client)
	size, err := downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		os.Remove(localPath)
		return "", 0, fmt.Errorf("failed to download from S3: %w", err)
	}

	return localPath, size, nil
}
