package web

import (
	"io/fs"
	"net/http"

	webembed "github.com/mkovacic/najdeno/web"
)

// NewRouter serves the embedded static frontend. Requests for paths that do
// not match a file fall back to index.html so that bookmarked page URLs
// still load the app shell.
func NewRouter() http.Handler {
	staticFS := webembed.StaticFS()
	fileServer := http.FileServer(http.FS(staticFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		path := r.URL.Path
		if path == "/" {
			fileServer.ServeHTTP(w, r)
			return
		}

		if _, err := fs.Stat(staticFS, path[1:]); err != nil {
			http.ServeFileFS(w, r, staticFS, "index.html")
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}
