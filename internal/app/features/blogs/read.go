package blogs

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"github.com/foliohub/foliohub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// falsy reports whether a query value spells boolean false. Case does not
// matter and the usual short forms are accepted alongside "false".
func falsy(v string) bool {
	switch strings.ToLower(v) {
	case "false", "f", "no", "n", "off", "0":
		return true
	}
	return false
}

// HandleList handles GET /profiles/{username}/blogs.
//
// published_only defaults to true; pass ?published_only=false to include
// drafts. Newest published first; drafts, having no published_at, sort
// last.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	publishedOnly := true
	if falsy(r.URL.Query().Get("published_only")) {
		publishedOnly = false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	blogs, err := h.Blogs.ListByUsername(ctx, username, publishedOnly)
	if err != nil {
		h.Log.Error("blog list failed", zap.String("username", username), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "blog list failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, blogs)
}

// HandleGet handles GET /profiles/{username}/blogs/{slug}. The match is
// exact on both keys; a draft is served here even though lists hide it by
// default.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	blog, err := h.Blogs.GetBySlug(ctx, username, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Not found")
			return
		}
		h.Log.Error("blog get failed", zap.String("username", username), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "blog get failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, blog)
}
