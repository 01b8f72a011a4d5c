package web

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// imageError is the field message shown when the uploaded file is not an
// image. Matches the message users of the original site saw.
const imageError = "Загрузите корректное изображение. Файл, который вы загрузили, поврежден или не является изображением."

// saveImage stores the uploaded image under MEDIA_DIR/posts/ with a
// generated name and returns its media-relative path. A missing file is not
// an error (the field is optional); a non-image file yields a field error.
func (app *App) saveImage(r *http.Request) (path string, fieldErr string, err error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", "", nil
		}
		return "", "", err
	}
	defer file.Close()
	if header.Filename == "" || header.Size == 0 {
		return "", "", nil
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", "", err
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return "", imageError, nil
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", "", err
	}

	name := uuid.NewString() + imageExt(contentType, header)
	dir := filepath.Join(app.cfg.MediaDir, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", "", err
	}
	return "posts/" + name, "", nil
}

func imageExt(contentType string, header *multipart.FileHeader) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	if ext := filepath.Ext(header.Filename); ext != "" {
		return ext
	}
	return ".img"
}
