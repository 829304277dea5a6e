package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

// Connect establishes a connection to MinIO and verifies it's working by listing buckets.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}

	m.connected = true
	return nil
}

// HealthCheck verifies the connection is still healthy by listing buckets.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

// Close marks the connection as disconnected. The MinIO client manages its
// own connection pool, so no explicit shutdown is required.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}

	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return handleMinIOError(err, "check_bucket_exists")
	}
	if exists {
		return nil
	}

	err = m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region})
	if err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

// UploadObject uploads an object to MinIO storage.
func (m *implMinIO) UploadObject(ctx context.Context, req *UploadRequest) (*ObjectInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	opts := minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "upload_object")
	}

	return &ObjectInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         req.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		Metadata:     req.Metadata,
	}, nil
}

// GetObjectInfo retrieves metadata about an object.
func (m *implMinIO) GetObjectInfo(ctx context.Context, bucketName, objectName string) (*ObjectInfo, error) {
	if err := validateBucketName(bucketName); err != nil {
		return nil, err
	}
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}

	objInfo, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_object_info")
	}

	return &ObjectInfo{
		BucketName:   bucketName,
		ObjectName:   objInfo.Key,
		Size:         objInfo.Size,
		ContentType:  objInfo.ContentType,
		ETag:         objInfo.ETag,
		LastModified: objInfo.LastModified,
		Metadata:     objInfo.UserMetadata,
	}, nil
}

// ObjectExists checks whether an object exists.
func (m *implMinIO) ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.GetObjectInfo(ctx, bucketName, objectName)
	if err != nil {
		if storageErr, ok := err.(*StorageError); ok && storageErr.Code == ErrCodeObjectNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteObject removes an object from storage.
func (m *implMinIO) DeleteObject(ctx context.Context, bucketName, objectName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	if err := validateObjectName(objectName); err != nil {
		return err
	}

	err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return handleMinIOError(err, "delete_object")
	}
	return nil
}

// PresignedDownloadURL generates a presigned URL for direct download.
func (m *implMinIO) PresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (*PresignedURL, error) {
	if err := validateBucketName(bucketName); err != nil {
		return nil, err
	}
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}
	if err := validateExpiry(expiry); err != nil {
		return nil, err
	}

	url, err := m.minioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return nil, handleMinIOError(err, "presigned_download_url")
	}

	return &PresignedURL{
		URL:       url.String(),
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// handleMinIOError converts MinIO errors to StorageError consistently.
func handleMinIOError(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}

	if minioErr, ok := err.(minio.ErrorResponse); ok {
		switch minioErr.Code {
		case "NoSuchBucket":
			return &StorageError{Code: ErrCodeBucketNotFound, Message: "Bucket not found", Operation: operation, Cause: err}
		case "NoSuchKey":
			return &StorageError{Code: ErrCodeObjectNotFound, Message: "Object not found", Operation: operation, Cause: err}
		case "AccessDenied":
			return &StorageError{Code: ErrCodePermission, Message: "Access denied", Operation: operation, Cause: err}
		default:
			return &StorageError{
				Code:      ErrCodeConnection,
				Message:   fmt.Sprintf("MinIO operation failed: %s", minioErr.Code),
				Operation: operation,
				Cause:     err,
			}
		}
	}

	return NewConnectionError(err)
}
