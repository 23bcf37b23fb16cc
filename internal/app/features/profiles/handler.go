package profiles

import (
	blogstore "github.com/foliohub/foliohub/internal/app/store/blogs"
	profilestore "github.com/foliohub/foliohub/internal/app/store/profiles"
	projectstore "github.com/foliohub/foliohub/internal/app/store/projects"
	userstore "github.com/foliohub/foliohub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public profile fetch and the profile update endpoint.
type Handler struct {
	Profiles *profilestore.Store
	Projects *projectstore.Store
	Blogs    *blogstore.Store
	Users    *userstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a profiles Handler bound to the given Mongo
// database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles: profilestore.New(db),
		Projects: projectstore.New(db),
		Blogs:    blogstore.New(db),
		Users:    userstore.New(db),
		Log:      logger,
	}
}
