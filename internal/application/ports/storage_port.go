package ports

import "context"

// FileStorage guarda archivos subidos (fotos de empleados, boletas del concurso)
// y devuelve la URL pública con la que se exponen.
type FileStorage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
