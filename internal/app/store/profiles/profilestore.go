package profilestore

import (
	"context"
	"time"

	"github.com/foliohub/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profile")}
}

// Create provisions the empty profile for a freshly signed-up username:
// blank headline and about, no socials, default theme.
func (s *Store) Create(ctx context.Context, username string) (models.Profile, error) {
	p := models.Profile{
		ID:       primitive.NewObjectID(),
		Username: username,
		Headline: "",
		About:    "",
		Socials:  map[string]string{},
		Theme:    models.DefaultTheme,
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// GetByUsername loads the profile for a username. Returns
// mongo.ErrNoDocuments if absent.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"username": username}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Patch holds the merge-patch fields for a profile update. Nil pointers are
// "not supplied" and leave the stored value untouched.
type Patch struct {
	Headline *string
	About    *string
	Socials  *map[string]string
	Theme    *string
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Headline == nil && p.About == nil && p.Socials == nil && p.Theme == nil
}

// Update applies the patch as a $set and returns the post-update profile.
// An empty patch performs no write: updated_at keeps its prior value and
// the stored profile is returned as-is. Returns mongo.ErrNoDocuments if no
// profile exists for the username.
func (s *Store) Update(ctx context.Context, username string, patch Patch) (*models.Profile, error) {
	current, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return current, nil
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Headline != nil {
		set["headline"] = *patch.Headline
	}
	if patch.About != nil {
		set["about"] = *patch.About
	}
	if patch.Socials != nil {
		set["socials"] = *patch.Socials
	}
	if patch.Theme != nil {
		set["theme"] = *patch.Theme
	}

	if _, err := s.c.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return s.GetByUsername(ctx, username)
}
