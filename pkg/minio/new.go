package minio

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"ciblsport-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// MinIO defines the interface for object storage operations.
type MinIO interface {
	// Connect establishes a connection and verifies it's working.
	Connect(ctx context.Context) error

	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error

	// Close closes the connection and cleans up resources.
	Close() error

	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error

	// UploadObject uploads an object to storage.
	UploadObject(ctx context.Context, req *UploadRequest) (*ObjectInfo, error)

	// ObjectExists checks whether an object exists.
	ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error)

	// GetObjectInfo retrieves metadata about an object.
	GetObjectInfo(ctx context.Context, bucketName, objectName string) (*ObjectInfo, error)

	// DeleteObject removes an object from storage.
	DeleteObject(ctx context.Context, bucketName, objectName string) error

	// PresignedDownloadURL generates a presigned URL for direct download.
	PresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (*PresignedURL, error)
}

// UploadRequest contains the parameters for uploading an object.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo represents metadata about a stored object.
type ObjectInfo struct {
	BucketName   string            `json:"bucketName"`
	ObjectName   string            `json:"objectName"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"contentType"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"lastModified"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// PresignedURL contains a generated presigned URL and its expiry.
type PresignedURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// implMinIO is the implementation of the MinIO interface.
type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	mu          sync.RWMutex
	connected   bool
}

// NewMinIO creates a new MinIO client with the provided configuration.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
		connected:   false,
	}, nil
}
