package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

var _ ports.FileStorage = (*S3Storage)(nil)

// s3API subconjunto del cliente S3 que se usa (permite fakes en tests).
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage guarda los archivos en un bucket S3.
type S3Storage struct {
	client     s3API
	bucket     string
	region     string
	publicBase string
}

// NewS3Storage carga las credenciales de la cadena por defecto de AWS (env, perfil, rol).
func NewS3Storage(ctx context.Context, bucket, region, publicBase string) (*S3Storage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket S3 no configurado")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("storage: cargar configuración AWS: %w", err)
	}
	return &S3Storage{
		client:     s3.NewFromConfig(cfg),
		bucket:     bucket,
		region:     region,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

// Save sube el objeto y devuelve su URL pública.
func (s *S3Storage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	k := cleanKey(key)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(k),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: subir %s a S3: %w", k, err)
	}
	return s.url(k), nil
}

// Delete borra el objeto (S3 no falla si no existe).
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	k := cleanKey(key)
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(k),
	}); err != nil {
		return fmt.Errorf("storage: borrar %s de S3: %w", k, err)
	}
	return nil
}

func (s *S3Storage) url(key string) string {
	if s.publicBase != "" {
		return s.publicBase + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
