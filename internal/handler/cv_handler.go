package handler

import (
	"net/http"
	"os"
	"path/filepath"
)

// CVHandler serves the downloadable resume from the public directory.
type CVHandler struct {
	publicDir string
}

// NewCVHandler creates a CVHandler rooted at the given public directory.
func NewCVHandler(publicDir string) *CVHandler {
	return &CVHandler{publicDir: publicDir}
}

// Download handles GET /api/cv/download.
// Prefers RESUME.pdf; falls back to sample-cv.pdf for backwards
// compatibility with older deployments.
func (h *CVHandler) Download(w http.ResponseWriter, r *http.Request) {
	candidates := []string{"RESUME.pdf", "sample-cv.pdf"}

	for _, name := range candidates {
		path := filepath.Join(h.publicDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
			http.ServeFile(w, r, path)
			return
		}
	}

	writeJSON(w, http.StatusNotFound, map[string]string{"error": "CV not found"})
}
