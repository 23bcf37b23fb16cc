package blogs

import "github.com/go-chi/chi/v5"

// Routes returns the blog subtree mounted under
// /profiles/{username}/blogs.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Get("/{slug}", h.HandleGet)
	return r
}
