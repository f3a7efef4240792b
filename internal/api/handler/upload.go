package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// saveUpload spools a multipart file field to a scratch file in dir and
// returns its path. The caller owns the file until it is handed to the
// media store, which removes it on every exit path.
func saveUpload(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("read %s field: %w", field, err)
	}
	defer file.Close()

	dst, err := os.CreateTemp(dir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("spool %s upload: %w", field, err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("close scratch file: %w", err)
	}

	return dst.Name(), nil
}

// discardScratch removes scratch files that were spooled but never
// reached the media store.
func discardScratch(paths ...string) {
	for _, p := range paths {
		if p != "" {
			os.Remove(p)
		}
	}
}
