package profiles

import (
	"context"
	"errors"
	"net/http"

	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"github.com/foliohub/foliohub/internal/app/system/timeouts"
	"github.com/foliohub/foliohub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// publicProfileResponse is the aggregated public view of a username.
type publicProfileResponse struct {
	Profile  *models.Profile  `json:"profile"`
	Projects []models.Project `json:"projects"`
	Blogs    []models.Blog    `json:"blogs"`
}

// ServePublicProfile handles GET /profiles/{username}: the profile joined
// with all projects (featured first) and all published posts (newest
// first).
//
// Signup writes the user and the profile without a transaction, so a user
// can briefly exist with no profile. This read heals that gap: if the user
// exists but the profile is missing, the empty profile is provisioned here
// before serving.
func (h *Handler) ServePublicProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	prof, err := h.loadOrProvision(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.Log.Error("public profile: profile load failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "profile fetch failed")
		return
	}

	projects, err := h.Projects.ListByUsername(ctx, username)
	if err != nil {
		h.Log.Error("public profile: project list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "profile fetch failed")
		return
	}

	blogs, err := h.Blogs.ListByUsername(ctx, username, true)
	if err != nil {
		h.Log.Error("public profile: blog list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "profile fetch failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, publicProfileResponse{
		Profile:  prof,
		Projects: projects,
		Blogs:    blogs,
	})
}

// loadOrProvision returns the profile for username, lazily creating the
// empty profile when the user exists without one. Returns
// mongo.ErrNoDocuments when neither exists.
func (h *Handler) loadOrProvision(ctx context.Context, username string) (*models.Profile, error) {
	prof, err := h.Profiles.GetByUsername(ctx, username)
	if err == nil {
		return prof, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if _, err := h.Users.GetByUsername(ctx, username); err != nil {
		return nil, err
	}

	h.Log.Info("provisioning missing profile on read", zap.String("username", username))
	created, err := h.Profiles.Create(ctx, username)
	if err != nil {
		// Lost a race with signup or another read; the profile exists now.
		return h.Profiles.GetByUsername(ctx, username)
	}
	return &created, nil
}
