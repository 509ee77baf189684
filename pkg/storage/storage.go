package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"ihost-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectClient 对象存储客户端需要的最小接口（便于测试替换）
type ObjectClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// Client 图片对象存储客户端
type Client struct {
	bucket string
	client ObjectClient
}

const presignedExpiry = 7 * 24 * time.Hour

// NewClient 创建对象存储客户端
func NewClient(cfg config.StorageConfig) (*Client, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建对象存储客户端失败: %w", err)
	}

	return &Client{
		bucket: cfg.Bucket,
		client: minioClient,
	}, nil
}

// NewClientWithObjectClient 使用自定义底层客户端创建（测试用）
func NewClientWithObjectClient(bucket string, oc ObjectClient) *Client {
	return &Client{bucket: bucket, client: oc}
}

// Upload 上传对象并返回预签名访问URL
func (c *Client) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.client.PutObject(ctx, c.bucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("上传对象失败: %w", err)
	}

	return c.PresignedURL(ctx, objectName)
}

// PresignedURL 生成对象的预签名访问URL
func (c *Client) PresignedURL(ctx context.Context, objectName string) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, c.bucket, objectName, presignedExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成预签名URL失败: %w", err)
	}
	return u.String(), nil
}

// Remove 删除对象
func (c *Client) Remove(ctx context.Context, objectName string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("删除对象失败: %w", err)
	}
	return nil
}
