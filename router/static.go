package router

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// staticHandler sert le site depuis root en refusant les fichiers cachés
// (.env, .git, ...) et les fichiers privés qui se trouvent sous root.
type staticHandler struct {
	root     string
	private  map[string]bool
	files    http.Handler
	notFound http.Handler
}

func newStaticHandler(root string, privateFiles []string, notFound http.Handler) *staticHandler {
	h := &staticHandler{
		root:     root,
		private:  make(map[string]bool),
		files:    http.FileServer(http.Dir(root)),
		notFound: notFound,
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		log.Warnf("⚠️  Dossier du site introuvable %q: %v", root, err)
		return h
	}
	h.root = absRoot

	for _, f := range privateFiles {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		if rel, err := filepath.Rel(absRoot, abs); err == nil && !strings.HasPrefix(rel, "..") {
			h.private[abs] = true
		}
	}

	return h
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if hasHiddenSegment(r.URL.Path) {
		h.notFound.ServeHTTP(w, r)
		return
	}

	target := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if h.private[target] {
		h.notFound.ServeHTTP(w, r)
		return
	}

	h.files.ServeHTTP(w, r)
}

// hasHiddenSegment indique si un segment du chemin commence par un point
func hasHiddenSegment(urlPath string) bool {
	for _, segment := range strings.Split(urlPath, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
