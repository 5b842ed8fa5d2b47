package stream

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	viewerdist "github.com/openvdb/nanovdb-editor-server/client/dist"
)

// serverHeaderValue identifies this server in every HTTP response.
const serverHeaderValue = "NanoVDB Editor Server"

// buildHandler assembles the three-route HTTP surface: the viewer page,
// the muxer library, and the WebSocket upgrade endpoint. Everything else
// is 404. Configured middleware wraps the router outermost-first.
func (s *Server) buildHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(serverHeader)

	r.Get("/", s.serveIndex)
	r.Get("/jmuxer.min.js", s.serveJmuxer)
	r.Get("/ws", s.handleUpgrade)

	var h http.Handler = r
	for i := len(s.config.Middleware) - 1; i >= 0; i-- {
		h = s.config.Middleware[i](h)
	}
	return h
}

// serverHeader stamps the Server header on every response, including 404s.
// net/http emits the Date header on its own.
func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", serverHeaderValue)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write(viewerdist.IndexHTML)
}

func (s *Server) serveJmuxer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript")
	w.Write(viewerdist.JmuxerMinJS)
}
