package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/vendorlynx/vendorlynx-go/internal/config"
)

var Client *minioSDK.Client
var BucketName string

// InitMinio connects to the object store holding work-order-log images
// and makes sure the bucket exists.
func InitMinio() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
}

// UploadLogImage stores one attachment under a generated key scoped to
// its work order and returns the key.
func UploadLogImage(ctx context.Context, workOrderID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	key := fmt.Sprintf("work-orders/%d/%s%s", workOrderID, uuid.NewString(), filepath.Ext(filename))
	_, err := Client.PutObject(ctx, BucketName, key, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}
