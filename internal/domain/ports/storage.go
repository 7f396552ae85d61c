package ports

import (
	"context"
	"io"
)

// FileStorage abstrai o armazenamento de arquivos enviados.
// Save grava o conteúdo sob o nome dado e retorna a URL relativa de acesso.
type FileStorage interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
