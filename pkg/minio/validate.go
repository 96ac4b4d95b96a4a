package minio

import (
	"strings"
	"time"

	"polaris-api/config"
)

const (
	maxObjectSize = 5 << 30
	maxExpiry     = 7 * 24 * time.Hour
)

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return NewInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += ":9000"
	}
	return validateBucketName(cfg.Bucket)
}

func validateUploadRequest(req *UploadRequest) error {
	switch {
	case req.BucketName == "":
		return NewInvalidInputError("bucket name is required")
	case req.ObjectName == "":
		return NewInvalidInputError("object name is required")
	case req.Reader == nil:
		return NewInvalidInputError("reader is required")
	case req.Size <= 0:
		return NewInvalidInputError("size must be positive")
	case req.Size > maxObjectSize:
		return NewInvalidInputError("file size cannot exceed 5GB")
	case req.ContentType == "":
		return NewInvalidInputError("content type is required")
	case strings.HasPrefix(req.ObjectName, "/"), strings.HasSuffix(req.ObjectName, "/"):
		return NewInvalidInputError("object name cannot start or end with '/'")
	}
	return nil
}

func validatePresignedURLRequest(req *PresignedURLRequest) error {
	switch {
	case req.BucketName == "":
		return NewInvalidInputError("bucket name is required")
	case req.ObjectName == "":
		return NewInvalidInputError("object name is required")
	case req.Expiry <= 0:
		return NewInvalidInputError("expiry must be positive")
	case req.Expiry > maxExpiry:
		return NewInvalidInputError("expiry cannot exceed 7 days")
	}
	return nil
}

// validateBucketName applies the S3 bucket naming rules MinIO enforces.
func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return NewInvalidInputError("bucket name must be 3 to 63 characters")
	}
	for _, c := range bucketName {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if strings.Contains(bucketName, "--") || strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return NewInvalidInputError("bucket name cannot start or end with a hyphen or contain consecutive hyphens")
	}
	return nil
}
