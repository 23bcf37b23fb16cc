package userstore

import (
	"context"
	"errors"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/foliohub/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user")}
}

var (
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UsernameExists reports whether any user holds the given username.
func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, bson.M{"username": username})
}

// EmailExists reports whether any user holds the given email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, bson.M{"email": email})
}

func (s *Store) exists(ctx context.Context, filter bson.M) (bool, error) {
	err := s.c.FindOne(ctx, filter).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Create inserts a new user and returns it with the store-assigned ID.
// Duplicate-key violations from the unique indexes are mapped to the same
// sentinel errors the pre-insert existence checks produce, so a signup that
// loses the check-then-insert race still surfaces as a conflict.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			// The username index is checked first at signup; without
			// parsing the server message, attribute the dup to whichever
			// field actually collides.
			if taken, lookErr := s.UsernameExists(ctx, u.Username); lookErr == nil && taken {
				return models.User{}, ErrDuplicateUsername
			}
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByCredentials loads the user whose username and password_hash both
// exactly match. Returns mongo.ErrNoDocuments on any mismatch; callers must
// not distinguish unknown-user from wrong-password.
func (s *Store) GetByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"username": username, "password_hash": passwordHash}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsername loads a user by username. Returns mongo.ErrNoDocuments if
// absent.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
