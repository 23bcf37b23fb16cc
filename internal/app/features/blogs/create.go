package blogs

import (
	"context"
	"net/http"

	"github.com/foliohub/foliohub/internal/app/system/htmlsanitize"
	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"github.com/foliohub/foliohub/internal/app/system/timeouts"
	"github.com/foliohub/foliohub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type createRequest struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}

// HandleCreate handles POST /profiles/{username}/blogs.
//
// A post created with published=true gets published_at stamped now; drafts
// get none. Slug uniqueness per username is intended but not enforced.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Slug == "" {
		httpjson.Error(w, http.StatusBadRequest, "slug is required")
		return
	}
	if req.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Content == "" {
		httpjson.Error(w, http.StatusBadRequest, "content is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	blog, err := h.Blogs.Create(ctx, models.Blog{
		Username:   username,
		Slug:       req.Slug,
		Title:      req.Title,
		Content:    htmlsanitize.Sanitize(req.Content),
		CoverImage: req.CoverImage,
		Published:  req.Published,
	})
	if err != nil {
		h.Log.Error("blog create failed", zap.String("username", username), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "blog create failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"id": blog.ID.Hex()})
}
