package blogstore

import (
	"context"
	"time"

	"github.com/foliohub/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blog")}
}

// Create inserts a blog post and returns it with the store-assigned ID.
// A post created published gets published_at stamped now; drafts carry no
// published_at. The stamp is never revisited: there is no edit operation.
func (s *Store) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	b.ID = primitive.NewObjectID()
	if b.Published && b.PublishedAt == nil {
		now := time.Now().UTC()
		b.PublishedAt = &now
	}
	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// ListByUsername returns the username's posts, newest published first.
// When publishedOnly is true, drafts are excluded. Posts without a
// published_at (drafts, when included) sort after every stamped post:
// BSON orders null/missing below timestamps, so the descending sort puts
// them last.
func (s *Store) ListByUsername(ctx context.Context, username string, publishedOnly bool) ([]models.Blog, error) {
	filter := bson.M{"username": username}
	if publishedOnly {
		filter["published"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	blogs := []models.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetBySlug loads the post matching both username and slug exactly.
// Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetBySlug(ctx context.Context, username, slug string) (*models.Blog, error) {
	var b models.Blog
	if err := s.c.FindOne(ctx, bson.M{"username": username, "slug": slug}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}
