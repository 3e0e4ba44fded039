package services

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// Photos are always stored as JPEG, matching what the mobile client sends.
const photoContentType = "image/jpeg"

// GCSPhotoStore writes uploaded photos to a Cloud Storage bucket. The
// object name is the uploaded file's original name, so re-uploading the
// same filename overwrites the previous blob.
type GCSPhotoStore struct {
	client *storage.Client
	bucket string
}

func NewGCSPhotoStore(client *storage.Client, bucket string) *GCSPhotoStore {
	return &GCSPhotoStore{client: client, bucket: bucket}
}

// Upload streams the file into the bucket and returns its public URL.
func (s *GCSPhotoStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(filename).NewWriter(ctx)
	w.ContentType = photoContentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	return PublicURL(s.bucket, filename), nil
}

// PublicURL is the deterministic public address of an object:
// https://storage.googleapis.com/<bucket>/<object>
func PublicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}
