// Package storage implementa ports.FileStorage en disco local o en S3.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/pkg/config"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage guarda los archivos bajo un directorio que el servidor HTTP expone como estático.
type LocalStorage struct {
	dir    string
	prefix string
}

// NewLocalStorage crea el directorio raíz si no existe.
func NewLocalStorage(dir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, prefix: strings.TrimRight(publicPrefix, "/")}, nil
}

// Dir directorio raíz (para montarlo como estático).
func (s *LocalStorage) Dir() string { return s.dir }

// Save escribe el archivo de forma atómica (tmp + rename) y devuelve su URL pública.
func (s *LocalStorage) Save(_ context.Context, key string, data []byte, _ string) (string, error) {
	full, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}
	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, full); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("storage: mover %s: %w", key, err)
	}
	return s.prefix + "/" + cleanKey(key), nil
}

// Delete borra el archivo; no falla si ya no existe.
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: borrar %s: %w", key, err)
	}
	return nil
}

// resolve impide que una key escape del directorio raíz.
func (s *LocalStorage) resolve(key string) (string, error) {
	k := cleanKey(key)
	if k == "" || k == "." || strings.HasPrefix(k, "..") {
		return "", fmt.Errorf("storage: key inválida %q", key)
	}
	return filepath.Join(s.dir, filepath.FromSlash(k)), nil
}

func cleanKey(key string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(key)), "/")
}

// New construye el backend configurado.
func New(ctx context.Context, cfg config.StorageConfig) (ports.FileStorage, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBase)
	default:
		return NewLocalStorage(cfg.UploadsDir, cfg.PublicPrefix)
	}
}
