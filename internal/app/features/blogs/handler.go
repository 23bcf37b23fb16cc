package blogs

import (
	blogstore "github.com/foliohub/foliohub/internal/app/store/blogs"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the blog endpoints under /profiles/{username}/blogs.
type Handler struct {
	Blogs *blogstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a blogs Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Blogs: blogstore.New(db),
		Log:   logger,
	}
}
