// internal/domain/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the identity record behind a public portfolio.
//
// NOTE:
//   - password_hash is an opaque value supplied by the caller; the server
//     never transforms it and login compares it byte-for-byte.
//   - Uniqueness of username and email is backed by unique indexes on the
//     user collection (see system/indexes).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	DisplayName  string             `bson:"display_name" json:"display_name"`
	AvatarURL    string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Verified     bool               `bson:"verified" json:"verified"`
}
