package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gmagencia/gmfaces-backend/internal/domain/errors"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/handlers/dto"
)

// Extensões por tipo MIME detectado no conteúdo.
// A extensão do nome original do arquivo é ignorada.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadHandler lida com upload de fotos de perfil
type UploadHandler struct {
	storage ports.FileStorage
	logger  ports.Logger
	maxSize int64
}

// NewUploadHandler cria um novo UploadHandler
func NewUploadHandler(storage ports.FileStorage, logger ports.Logger, maxSize int64) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
		maxSize: maxSize,
	}
}

// UploadImage recebe uma imagem multipart (campo "image"), valida tipo e
// tamanho e grava com um nome único. Retorna a URL relativa servida em /uploads.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "image", Message: "arquivo obrigatório", Tag: "required"},
		}))
		return
	}

	if fileHeader.Size > h.maxSize {
		respondDomainError(c, errors.ErrImageTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("falha ao abrir arquivo enviado", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}
	defer func() { _ = file.Close() }()

	// O tipo vem do conteúdo, não do Content-Type declarado pelo cliente
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		h.logger.Error("falha ao ler arquivo enviado", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	contentType := http.DetectContentType(head[:n])
	ext, ok := imageExtensions[contentType]
	if !ok {
		respondDomainError(c, errors.ErrInvalidImageType)
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.logger.Error("falha ao reposicionar arquivo enviado", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	url, err := h.storage.Save(c.Request.Context(), filename, file)
	if err != nil {
		h.logger.Error("falha ao gravar imagem", "filename", filename, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
