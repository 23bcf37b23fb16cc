package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/foliohub/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given credentials.
func (f *Fixtures) CreateUser(ctx context.Context, username, email, passwordHash string) models.User {
	f.t.Helper()

	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  username,
		Verified:     false,
	}
	if _, err := f.db.Collection("user").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateProfile inserts an empty profile for the username.
func (f *Fixtures) CreateProfile(ctx context.Context, username string) models.Profile {
	f.t.Helper()

	prof := models.Profile{
		ID:       primitive.NewObjectID(),
		Username: username,
		Headline: "",
		About:    "",
		Socials:  map[string]string{},
		Theme:    models.DefaultTheme,
	}
	if _, err := f.db.Collection("profile").InsertOne(ctx, prof); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return prof
}

// CreateProject inserts a project for the username.
func (f *Fixtures) CreateProject(ctx context.Context, username, title string, featured bool) models.Project {
	f.t.Helper()

	project := models.Project{
		ID:       primitive.NewObjectID(),
		Username: username,
		Title:    title,
		Tags:     []string{},
		Featured: featured,
	}
	if _, err := f.db.Collection("project").InsertOne(ctx, project); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateBlog inserts a blog post; published posts get publishedAt as their
// stamp.
func (f *Fixtures) CreateBlog(ctx context.Context, username, slug string, published bool, publishedAt *time.Time) models.Blog {
	f.t.Helper()

	blog := models.Blog{
		ID:          primitive.NewObjectID(),
		Username:    username,
		Slug:        slug,
		Title:       "Post " + slug,
		Content:     "content for " + slug,
		Published:   published,
		PublishedAt: publishedAt,
	}
	if _, err := f.db.Collection("blog").InsertOne(ctx, blog); err != nil {
		f.t.Fatalf("failed to create test blog: %v", err)
	}
	return blog
}
