// Object storage untuk file media kiosk (video istirahat, thumbnail, avatar guru).
// Bucket diasumsikan public-read; kiosk cukup diberi URL langsung.
package storage

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sltnnt08/ilab-v2/internals/configs"
)

var client *minio.Client

func InitMinio() error {
	if configs.MinioEndpoint == "" {
		return fmt.Errorf("MINIO_ENDPOINT kosong")
	}
	c, err := minio.New(configs.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(configs.MinioAccessKey, configs.MinioSecretKey, ""),
		Secure: configs.MinioUseSSL,
	})
	if err != nil {
		return err
	}
	client = c
	log.Println("✅ MinIO client siap.")
	return nil
}

// UploadFile simpan file multipart ke bucket dengan object key acak
// (prefix/uuid.ext) dan kembalikan key-nya.
func UploadFile(ctx context.Context, fh *multipart.FileHeader, prefix string) (string, error) {
	if client == nil {
		return "", fmt.Errorf("minio belum diinisialisasi")
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("%s/%s%s", strings.Trim(prefix, "/"), uuid.NewString(), ext)

	_, err = client.PutObject(ctx, configs.MinioBucket, key, f, fh.Size, minio.PutObjectOptions{
		ContentType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// RemoveFile hapus object; dipakai best-effort saat delete/replace media.
func RemoveFile(ctx context.Context, key string) error {
	if client == nil || key == "" {
		return nil
	}
	return client.RemoveObject(ctx, configs.MinioBucket, key, minio.RemoveObjectOptions{})
}

// PublicURL bangun URL display dari object key.
func PublicURL(key string) string {
	if key == "" {
		return ""
	}
	scheme := "http"
	if configs.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, configs.MinioEndpoint, configs.MinioBucket, key)
}
