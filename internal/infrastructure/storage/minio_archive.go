package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"equine_billing/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOArchive stores exported files and hands out presigned download links.
type MinIOArchive struct {
	client     *minio.Client
	bucketName string
	linkTTL    time.Duration
}

var _ interfaces.IExportArchive = (*MinIOArchive)(nil)

func NewMinIOArchive(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool, linkTTL time.Duration) (*MinIOArchive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.WithField("bucket", bucketName).Info("[storage] bucket created")
	}

	return &MinIOArchive{client: client, bucketName: bucketName, linkTTL: linkTTL}, nil
}

// Put uploads data under name and returns a presigned GET url.
func (a *MinIOArchive) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	_, err := a.client.PutObject(ctx, a.bucketName, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", name))
	u, err := a.client.PresignedGetObject(ctx, a.bucketName, name, a.linkTTL, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}
