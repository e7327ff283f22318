package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client archives raw uploads into one container of an S3-compatible
// object store.
type Client struct {
	mc        *minio.Client
	container string
}

// New connects to the store at endpoint (scheme optional, https
// implies TLS) and binds the client to container.
func New(endpoint, accessKey, secretKey, container string) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing storage endpoint: %w", err)
	}
	host := u.Host
	if host == "" {
		host = endpoint
	}

	mc, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: u.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &Client{mc: mc, container: container}, nil
}

// Upload writes data under name, overwriting any existing object of
// the same name.
func (c *Client) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := c.mc.PutObject(ctx, c.container, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	return nil
}
