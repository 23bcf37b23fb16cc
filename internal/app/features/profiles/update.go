package profiles

import (
	"context"
	"errors"
	"net/http"

	profilestore "github.com/foliohub/foliohub/internal/app/store/profiles"
	"github.com/foliohub/foliohub/internal/app/system/htmlsanitize"
	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"github.com/foliohub/foliohub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// updateRequest is a merge-patch: nil means "leave the stored value alone",
// so clients can clear a field by sending "" but not by omitting it.
type updateRequest struct {
	Headline *string            `json:"headline"`
	About    *string            `json:"about"`
	Socials  *map[string]string `json:"socials"`
	Theme    *string            `json:"theme"`
}

// HandleUpdate handles PUT /profiles/{username}.
//
// Only supplied non-null fields overwrite; updated_at is stamped when at
// least one field changes, and an empty patch returns the profile untouched
// with no write at all.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.About != nil {
		clean := htmlsanitize.Sanitize(*req.About)
		req.About = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	prof, err := h.Profiles.Update(ctx, username, profilestore.Patch{
		Headline: req.Headline,
		About:    req.About,
		Socials:  req.Socials,
		Theme:    req.Theme,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.Log.Error("profile update failed", zap.String("username", username), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "profile update failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, prof)
}
