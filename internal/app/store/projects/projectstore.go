package projectstore

import (
	"context"

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
	return &Store{c: db.Collection("project")}
}

// Create inserts a project and returns it with the store-assigned ID.
// The username is recorded as given; no referential check against the user
// collection is made.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = primitive.NewObjectID()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// ListByUsername returns every project owned by username, featured first.
// There is no secondary sort key: projects with equal featured keep their
// store order.
func (s *Store) ListByUsername(ctx context.Context, username string) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "featured", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, err
	}
	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete removes the project with the given ID, but only if username owns
// it. Returns the number of documents deleted (0 or 1); a correct ID owned
// by a different user deletes nothing.
func (s *Store) Delete(ctx context.Context, username string, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "username": username})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
