// internal/domain/models/project.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio entry owned by a username. Ownership is enforced
// by filter: every query and delete includes the username.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags" json:"tags"`
	URL         string             `bson:"url,omitempty" json:"url,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
}
