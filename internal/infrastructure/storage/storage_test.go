package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := s.Save(ctx, "empleados/c1/e1.jpg", []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/empleados/c1/e1.jpg", url)

	got, err := os.ReadFile(filepath.Join(dir, "empleados", "c1", "e1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(got))

	require.NoError(t, s.Delete(ctx, "empleados/c1/e1.jpg"))
	require.NoError(t, s.Delete(ctx, "empleados/c1/e1.jpg"), "borrar dos veces no es error")
	_, err = os.Stat(filepath.Join(dir, "empleados", "c1", "e1.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_KeyNoEscapaDelDirectorio(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "raiz"), "/uploads")
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "../../fuera.jpg", []byte("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/fuera.jpg", url)
	_, err = os.Stat(filepath.Join(dir, "raiz", "fuera.jpg"))
	assert.NoError(t, err)

	_, err = s.Save(context.Background(), "", []byte("x"), "image/jpeg")
	assert.Error(t, err)
}

type fakeS3 struct {
	put     *s3.PutObjectInput
	deleted string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = aws.ToString(in.Key)
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3Storage(t *testing.T) {
	fake := &fakeS3{}
	s := &S3Storage{client: fake, bucket: "fotos", region: "sa-east-1"}
	ctx := context.Background()

	url, err := s.Save(ctx, "/concurso/c1/x.jpg", []byte("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://fotos.s3.sa-east-1.amazonaws.com/concurso/c1/x.jpg", url)
	assert.Equal(t, "concurso/c1/x.jpg", aws.ToString(fake.put.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(fake.put.ContentType))

	s.publicBase = "https://cdn.ejemplo.cl"
	url, err = s.Save(ctx, "a.jpg", nil, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.ejemplo.cl/a.jpg", url)

	require.NoError(t, s.Delete(ctx, "a.jpg"))
	assert.Equal(t, "a.jpg", fake.deleted)

	fake.err = errors.New("boom")
	_, err = s.Save(ctx, "b.jpg", nil, "image/jpeg")
	assert.Error(t, err)
}
