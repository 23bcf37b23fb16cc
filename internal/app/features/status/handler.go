package status

import (
	"context"
	"net/http"

	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"github.com/foliohub/foliohub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// maxErrLen bounds how much of a store error leaks into the diagnostic
// response.
const maxErrLen = 80

// Handler serves the store-connectivity diagnostic endpoint.
type Handler struct {
	DB        *mongo.Database
	URLSet    bool
	DBNameSet bool
	Log       *zap.Logger
}

// NewHandler constructs a status Handler. urlSet and dbNameSet report
// whether the store URL and database name resolved from configuration;
// the values themselves are never echoed.
func NewHandler(db *mongo.Database, urlSet, dbNameSet bool, logger *zap.Logger) *Handler {
	return &Handler{DB: db, URLSet: urlSet, DBNameSet: dbNameSet, Log: logger}
}

// statusResponse mirrors the diagnostic shape the dashboard consumes.
type statusResponse struct {
	Backend      string   `json:"backend"`
	Database     string   `json:"database"`
	DatabaseURL  string   `json:"database_url"`
	DatabaseName string   `json:"database_name"`
	Collections  []string `json:"collections"`
}

func flag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// Serve handles GET /test.
//
// Always responds 200: a store failure is downgraded to a bounded error
// string in the database field rather than propagated.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := statusResponse{
		Backend:      "✅ Running",
		Database:     "❌ Not Available",
		DatabaseURL:  flag(h.URLSet),
		DatabaseName: flag(h.DBNameSet),
		Collections:  []string{},
	}

	cols, err := h.DB.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		h.Log.Warn("status: listing collections failed", zap.Error(err))
		msg := err.Error()
		if len(msg) > maxErrLen {
			msg = msg[:maxErrLen]
		}
		resp.Database = "❌ Error: " + msg
		httpjson.Respond(w, http.StatusOK, resp)
		return
	}

	resp.Database = "✅ Connected"
	resp.Collections = cols
	httpjson.Respond(w, http.StatusOK, resp)
}
