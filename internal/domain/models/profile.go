// internal/domain/models/profile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultTheme is applied to every profile provisioned at signup.
const DefaultTheme = "holo"

// Profile is the public portfolio page for a username. One profile exists
// per user; it is provisioned empty at signup and mutated only through
// merge-patch updates.
type Profile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Headline  string             `bson:"headline" json:"headline"`
	About     string             `bson:"about" json:"about"`
	Socials   map[string]string  `bson:"socials" json:"socials"`
	Theme     string             `bson:"theme" json:"theme"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
