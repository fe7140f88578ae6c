package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var allowedImageTypes = []string{
	constvars.MIMEImageJPEG,
	constvars.MIMEImagePNG,
	constvars.MIMEImageWEBP,
}

// ObjectPutter is the subset of *minio.Client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioStorage struct {
	client        ObjectPutter
	bucketName    string
	publicBaseURL string
	maxSize       int64
	Log           *zap.Logger
}

func NewMinioStorage(client ObjectPutter, bucketName, publicBaseURL string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		client:        client,
		bucketName:    bucketName,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxSize:       constvars.MaxPictureSizeInBytes,
		Log:           logger,
	}
}

// UploadImage sniffs the content type from the payload instead of trusting
// the client supplied header.
func (m *minioStorage) UploadImage(ctx context.Context, file io.Reader, size int64, folder string) (string, error) {
	if size > m.maxSize {
		return "", exceptions.ErrImageTooLarge(nil)
	}

	content, err := io.ReadAll(io.LimitReader(file, m.maxSize+1))
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if int64(len(content)) > m.maxSize {
		return "", exceptions.ErrImageTooLarge(nil)
	}

	detected := mimetype.Detect(content)
	if !mimetype.EqualsAny(detected.String(), allowedImageTypes...) {
		return "", exceptions.ErrImageValidation(fmt.Errorf("unsupported content type %s", detected.String()))
	}

	objectName := utils.GenerateObjectName(folder, detected.Extension())
	_, err = m.client.PutObject(ctx, m.bucketName, objectName, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: detected.String(),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.bucketName)
	}

	m.Log.Info("minioStorage.UploadImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBucketNameKey, m.bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return fmt.Sprintf("%s/%s/%s", m.publicBaseURL, m.bucketName, objectName), nil
}
