package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"backoffice/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// FileService stores profile photos in S3 and hands out presigned
// download links.
type FileService struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	baseURL       string
}

func NewFileService(client *s3.Client, bucket, baseURL string) *FileService {
	return &FileService{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        bucket,
		baseURL:       baseURL,
	}
}

// PutProfilePhoto uploads the image under user/{userID}/ with a slugged,
// uuid-suffixed filename and returns the stored reference.
func (s *FileService) PutProfilePhoto(ctx context.Context, userID, originalFilename, mime string, size int64, body io.Reader) (*model.Photo, error) {
	ext := strings.ToLower(path.Ext(originalFilename))
	base := strings.TrimSuffix(originalFilename, path.Ext(originalFilename))
	filename := fmt.Sprintf("%s-%s%s", slug.Make(base), uuid.NewString(), ext)
	dir := fmt.Sprintf("user/%s", userID)
	key := dir + "/" + filename

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(mime),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo to s3: %w", err)
	}

	return &model.Photo{
		Path:             dir,
		PathWithFilename: key,
		Filename:         filename,
		CompletedURL:     s.baseURL + "/" + key,
		BaseURL:          s.baseURL,
		Mime:             mime,
		Size:             size,
	}, nil
}

// PresignGet returns a time-limited download URL for a stored object.
func (s *FileService) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	result, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign photo url: %w", err)
	}
	return result.URL, nil
}

func (s *FileService) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete photo from s3: %w", err)
	}
	return nil
}
