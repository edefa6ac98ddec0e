package assets

import (
	"net/http"
	"strings"
)

// Handler serves the asset pack under URLPrefix. Requests outside the prefix get 404
// so the desktop shell can fall through to its embedded frontend.
func (r *Resolver) Handler() http.Handler {
	files := http.StripPrefix(strings.TrimSuffix(URLPrefix, "/"), http.FileServer(http.Dir(r.layout.Root)))
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.HasPrefix(req.URL.Path, URLPrefix) {
			http.NotFound(w, req)
			return
		}
		files.ServeHTTP(w, req)
	})
}
