package common

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"autokomis/backoffice/internal/apperrors"
)

// Allowed upload extensions; anything else is rejected before touching disk.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".mp4":  {},
}

// UploadService stores admin-uploaded images on local disk under the uploads
// directory and returns the public URL the listing record references.
type UploadService struct {
	dir       string
	publicURL string
	maxBytes  int64
}

func NewUploadService(dir, publicURL string, maxBytes int64) *UploadService {
	if maxBytes <= 0 {
		maxBytes = 20 << 20 // 20 MiB
	}
	return &UploadService{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxBytes:  maxBytes,
	}
}

// Store writes the uploaded file under a uuid name and returns its public
// URL. Failures surface as UploadError.
func (s *UploadService) Store(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", apperrors.NewValidationError("unsupported file type: " + ext)
	}
	if header.Size > s.maxBytes {
		return "", apperrors.NewValidationError(fmt.Sprintf("file too large: %d bytes", header.Size))
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", apperrors.NewUploadError(err)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", apperrors.NewUploadError(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", apperrors.NewUploadError(err)
	}

	return s.publicURL + "/" + name, nil
}

// Dir exposes the storage directory for static file serving.
func (s *UploadService) Dir() string {
	return s.dir
}
