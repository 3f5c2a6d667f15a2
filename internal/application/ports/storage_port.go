package ports

import (
	"context"
	"io"
)

// ImageStorage define el puerto de salida para guardar imágenes de productos.
// El adaptador (S3, MinIO, mock) devuelve la URL pública del objeto guardado.
// El contexto debe llevar un timeout: la llamada sale a un servicio externo.
type ImageStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
