package supabase

import (
	"bytes"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is empty")
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *StorageClient) Bucket() string {
	return s.bucket
}

// UploadFile writes data under storagePath. Existing objects are never
// overwritten; paths carry the pickup code and a millisecond timestamp.
func (s *StorageClient) UploadFile(storagePath string, data []byte, contentType string) error {
	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// SignedURL returns a time-limited download link for a private object.
func (s *StorageClient) SignedURL(storagePath string, expiresInSeconds int) (string, error) {
	resp, err := s.client.CreateSignedUrl(s.bucket, storagePath, expiresInSeconds)
	if err != nil {
		return "", fmt.Errorf("failed to sign url: %w", err)
	}
	signed := resp.SignedURL
	if strings.HasPrefix(signed, "/") {
		signed = s.baseURL + "/storage/v1" + signed
	}
	return signed, nil
}
