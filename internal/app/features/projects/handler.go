package projects

import (
	"context"
	"net/http"

	projectstore "github.com/foliohub/foliohub/internal/app/store/projects"
	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"github.com/foliohub/foliohub/internal/app/system/timeouts"
	"github.com/foliohub/foliohub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the project endpoints under /profiles/{username}/projects.
type Handler struct {
	Projects *projectstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a projects Handler bound to the given Mongo
// database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Projects: projectstore.New(db),
		Log:      logger,
	}
}

type createRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url"`
	Featured    bool     `json:"featured"`
}

// HandleCreate handles POST /profiles/{username}/projects. The username is
// taken from the path as-is; no check that a user exists behind it.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	project, err := h.Projects.Create(ctx, models.Project{
		Username:    username,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
	})
	if err != nil {
		h.Log.Error("project create failed", zap.String("username", username), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "project create failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"id": project.ID.Hex()})
}

// HandleList handles GET /profiles/{username}/projects, featured first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := h.Projects.ListByUsername(ctx, username)
	if err != nil {
		h.Log.Error("project list failed", zap.String("username", username), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "project list failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, projects)
}

// HandleDelete handles DELETE /profiles/{username}/projects/{project_id}.
//
// A syntactically invalid ID is a 400. A valid ID that matches no project
// owned by the path username is a 404; an ID owned by someone else deletes
// nothing.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "project_id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Projects.Delete(ctx, username, id)
	if err != nil {
		h.Log.Error("project delete failed", zap.String("username", username), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "project delete failed")
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "Not found")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]bool{"ok": true})
}
