package auth

import (
	profilestore "github.com/foliohub/foliohub/internal/app/store/profiles"
	userstore "github.com/foliohub/foliohub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the signup and login endpoints.
type Handler struct {
	Users    *userstore.Store
	Profiles *profilestore.Store
	Log      *zap.Logger
}

// NewHandler constructs an auth Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Profiles: profilestore.New(db),
		Log:      logger,
	}
}
