package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/cliptube/cliptube/internal/domain/repository"
	"github.com/cliptube/cliptube/internal/probe"
)

// minioClient defines the interface for MinIO operations.
// This abstraction allows for easier unit testing with mocks.
type minioClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// ClientConfig holds configuration for the MinIO media store.
type ClientConfig struct {
	Endpoint       string
	PublicEndpoint string // Optional: external-facing endpoint used in locators
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
}

// Client implements repository.MediaStore backed by MinIO.
//
// Objects are stored under {kind}/{id} keys; locators expose the same path
// with the original file extension appended, so the key and kind are
// recoverable from the locator alone.
type Client struct {
	client  minioClient
	prober  probe.DurationProber
	bucket  string
	baseURL string
}

// NewClient creates a new MinIO-backed media store.
// It verifies the bucket exists during initialization to fail fast on
// misconfiguration.
func NewClient(ctx context.Context, cfg ClientConfig, prober probe.DurationProber) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return newClientWithMinioClient(ctx, client, prober, cfg)
}

// newClientWithMinioClient creates a Client with a given minioClient
// implementation. This is used for dependency injection in tests.
func newClientWithMinioClient(ctx context.Context, client minioClient, prober probe.DurationProber, cfg ClientConfig) (*Client, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", repository.ErrBucketNotFound, cfg.Bucket)
	}

	endpoint := cfg.PublicEndpoint
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &Client{
		client:  client,
		prober:  prober,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket),
	}, nil
}

// UploadFile stores a local scratch file as a remote object of the given
// kind and returns its locator. The local file is removed on every exit
// path; the upload attempt consumes it whether or not it succeeds.
func (c *Client) UploadFile(ctx context.Context, localPath string, kind repository.AssetKind) (*repository.UploadResult, error) {
	defer func() { _ = os.Remove(localPath) }()

	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid asset kind %q", kind)
	}

	// Probe before the upload while the scratch file still exists.
	var duration float64
	if kind == repository.AssetVideo && c.prober != nil {
		d, err := c.prober.Duration(ctx, localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to probe duration: %w", err)
		}
		duration = d
	}

	ext := filepath.Ext(localPath)
	key := path.Join(kind.String(), uuid.NewString())

	_, err := c.client.FPutObject(ctx, c.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentTypeFor(kind, ext),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &repository.UploadResult{
		Locator:  fmt.Sprintf("%s/%s%s", c.baseURL, key, ext),
		Duration: duration,
	}, nil
}

// DeleteByLocator removes the remote object a locator references. An
// already-absent object is treated as success.
func (c *Client) DeleteByLocator(ctx context.Context, locator string) error {
	key, _, err := ParseLocator(locator)
	if err != nil {
		return err
	}

	// RemoveObject does not report missing objects, so absence is checked
	// explicitly to distinguish "already gone" from a failed delete.
	_, err = c.client.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to stat object: %w", err)
	}

	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// Ping verifies the MinIO connection is alive by checking bucket access.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to ping minio: %w", err)
	}
	return nil
}

func contentTypeFor(kind repository.AssetKind, ext string) string {
	switch strings.ToLower(ext) {
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	if kind == repository.AssetVideo {
		return "video/mp4"
	}
	return "application/octet-stream"
}

// Compile-time verification that Client implements repository.MediaStore.
var _ repository.MediaStore = (*Client)(nil)
