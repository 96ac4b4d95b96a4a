package minio

import (
	"io"
	"time"
)

type FileInfo struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	OriginalName string            `json:"original_name"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"last_modified"`
	Metadata     map[string]string `json:"metadata"`
}

type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
}

type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Method    string    `json:"method"`
}
