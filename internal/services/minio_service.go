package services

import (
	"context"
	"fmt"
	"io"
	"socketBoard/configs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioService is the object storage FileManager.
type MinioService struct {
	minioClient *minio.Client
	config      *configs.Config
	logger      *zap.Logger
}

// NewMinioService connects and makes sure the configured bucket exists.
func NewMinioService(ctx context.Context, config *configs.Config, logger *zap.Logger) (*MinioService, error) {
	endpoint := config.Viper.GetString("minio.endpoint")
	accessKeyID := config.Viper.GetString("minio.access_key_id")
	secretAccessKey := config.Viper.GetString("minio.secret_access_key")
	useSSL := config.Viper.GetBool("minio.use_ssl")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	ms := &MinioService{
		minioClient: minioClient,
		config:      config,
		logger:      logger.Named("minio"),
	}
	if err := ms.ensureBucket(ctx, config.Viper.GetString("minio.bucket")); err != nil {
		return nil, err
	}
	return ms, nil
}

func (ms *MinioService) ensureBucket(ctx context.Context, bucketName string) error {
	err := ms.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err == nil {
		ms.logger.Info("Successfully created bucket", zap.String("bucket", bucketName))
		return nil
	}
	exists, errBucketExists := ms.minioClient.BucketExists(ctx, bucketName)
	if errBucketExists == nil && exists {
		ms.logger.Info("Bucket already exists", zap.String("bucket", bucketName))
		return nil
	}
	return err
}

func (ms *MinioService) UploadFile(ctx context.Context, fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	info, err := ms.minioClient.PutObject(ctx, bucketName, fileName, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return ms.GetPublicFileUrl(bucketName, info.Key), nil
}

func (ms *MinioService) GetPublicFileUrl(bucketName, fileKey string) string {
	externalEndpoint := ms.config.Viper.GetString("minio.external_endpoint")
	return fmt.Sprintf("http://%s/%s/%s", externalEndpoint, bucketName, fileKey)
}
