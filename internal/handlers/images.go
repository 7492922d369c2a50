package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// NewImageHandler returns an HTTP handler that serves generated images from
// imageDir. Filenames resolving outside the directory are rejected.
// @Summary Serve a generated image
// @Description Returns the PNG bytes of a generated image
// @Tags content
// @Produce png
// @Param filename path string true "Image filename"
// @Success 200 "Image bytes"
// @Failure 404 "Image not found"
// @Router /images/{filename} [get]
func NewImageHandler(imageDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")

		if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
			http.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(imageDir, filename))
	}
}
