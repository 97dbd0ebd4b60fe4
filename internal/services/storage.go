package services

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const imageFetchTimeout = 15 * time.Second

// ImageCache mirrors recipe images into S3-compatible storage so the app
// is not serving hotlinked upstream URLs.
type ImageCache struct {
	client     *minio.Client
	bucketName string
	region     string
	httpClient *http.Client
}

// NewImageCache creates an image cache backed by an S3-compatible endpoint.
func NewImageCache(endpoint, accessKey, secretKey, bucketName, region string, useSSL bool) (*ImageCache, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &ImageCache{
		client:     client,
		bucketName: bucketName,
		region:     region,
		httpClient: &http.Client{Timeout: imageFetchTimeout},
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (c *ImageCache) EnsureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = c.client.MakeBucket(ctx, c.bucketName, minio.MakeBucketOptions{
			Region: c.region,
		})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// CacheImageFromURL fetches the image at srcURL and stores it under the
// recipe id, returning a presigned URL for the cached copy. Objects keep
// the source extension so content sniffing stays sane.
func (c *ImageCache) CacheImageFromURL(ctx context.Context, recipeID, srcURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	key := "recipes/" + recipeID + path.Ext(srcURL)
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err = c.client.PutObject(ctx, c.bucketName, key, resp.Body, resp.ContentLength, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return c.ObjectURL(ctx, key)
}

// ObjectURL generates a presigned URL for a cached object.
func (c *ImageCache) ObjectURL(ctx context.Context, key string) (string, error) {
	url, err := c.client.PresignedGetObject(ctx, c.bucketName, key, 7*24*time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}
