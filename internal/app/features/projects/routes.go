package projects

import "github.com/go-chi/chi/v5"

// Routes returns the project subtree mounted under
// /profiles/{username}/projects.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Delete("/{project_id}", h.HandleDelete)
	return r
}
