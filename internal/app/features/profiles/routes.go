package profiles

import (
	"github.com/foliohub/foliohub/internal/app/features/blogs"
	"github.com/foliohub/foliohub/internal/app/features/projects"
	"github.com/go-chi/chi/v5"
)

// Routes returns the /profiles subtree. Project and blog routes live under
// each username, so their handlers are mounted here and read the username
// from the shared route context.
func Routes(h *Handler, ph *projects.Handler, bh *blogs.Handler) chi.Router {
	r := chi.NewRouter()
	r.Route("/{username}", func(r chi.Router) {
		r.Get("/", h.ServePublicProfile)
		r.Put("/", h.HandleUpdate)
		r.Mount("/projects", projects.Routes(ph))
		r.Mount("/blogs", blogs.Routes(bh))
	})
	return r
}
