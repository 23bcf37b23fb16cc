package home

import (
	"net/http"

	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Handler serves the API root.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a home Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// Serve handles GET / with a liveness message.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	httpjson.Respond(w, http.StatusOK, map[string]string{
		"message": "Portfolio API running",
	})
}
