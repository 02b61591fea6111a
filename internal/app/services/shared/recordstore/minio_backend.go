package recordstore

import (
	"bytes"
	"context"
	"io"
	"symptomix-service/internal/pkg/constvars"

	"github.com/minio/minio-go/v7"
)

// MinioBackend keeps each collection as one object in a bucket.
type MinioBackend struct {
	MinioClient *minio.Client
	bucketName  string
	prefix      string
}

func NewMinioBackend(minioClient *minio.Client, bucketName, prefix string) *MinioBackend {
	return &MinioBackend{
		MinioClient: minioClient,
		bucketName:  bucketName,
		prefix:      prefix,
	}
}

func (b *MinioBackend) Name() string {
	return constvars.StoreBackendMinio
}

// EnsureBucket creates the bucket when it does not exist yet.
func (b *MinioBackend) EnsureBucket(ctx context.Context) error {
	exists, err := b.MinioClient.BucketExists(ctx, b.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return b.MinioClient.MakeBucket(ctx, b.bucketName, minio.MakeBucketOptions{})
}

func (b *MinioBackend) objectName(collection string) string {
	return b.prefix + collection + constvars.RecordCollectionFileExtension
}

func (b *MinioBackend) Read(ctx context.Context, collection string) ([]byte, error) {
	object, err := b.MinioClient.GetObject(ctx, b.bucketName, b.objectName(collection), minio.GetObjectOptions{})
	if err != nil {
		return nil, translateMinioError(err)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, translateMinioError(err)
	}
	return content, nil
}

func (b *MinioBackend) Write(ctx context.Context, collection string, content []byte) error {
	_, err := b.MinioClient.PutObject(
		ctx,
		b.bucketName,
		b.objectName(collection),
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	return err
}

func translateMinioError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrDocumentNotFound
	}
	return err
}
