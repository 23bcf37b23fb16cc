package status

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the diagnostic endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve) // mounted under /test
	return r
}
