package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
)

// LocalStorage implementa ports.FileStorage gravando no filesystem local.
// Sem abstração de storage remoto: os arquivos vivem no diretório de uploads
// servido estaticamente pela aplicação.
type LocalStorage struct {
	dir       string
	publicURL string
}

// NewLocalStorage cria o storage local, garantindo que o diretório exista
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorage{dir: dir, publicURL: "/uploads"}, nil
}

var _ ports.FileStorage = (*LocalStorage)(nil)

// Save grava o conteúdo e retorna a URL relativa (/uploads/<filename>)
func (s *LocalStorage) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	// filepath.Base impede path traversal via nome de arquivo
	filename = filepath.Base(filename)
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.publicURL + "/" + filename, nil
}

// Dir retorna o diretório local, usado para servir os arquivos estáticos
func (s *LocalStorage) Dir() string {
	return s.dir
}
