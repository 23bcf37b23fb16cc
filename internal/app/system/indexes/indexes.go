// Package indexes ensures the collections and indexes the API relies on.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates the indexes for every collection. The unique indexes on
// user.username and user.email close the window between signup's existence
// checks and the insert; profile.username stays unique so lazy profile
// provisioning can never double-create.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, idx []mongo.IndexModel) {
		if len(idx) == 0 {
			return
		}
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}

	unique := options.Index().SetUnique(true)

	ensure("user", []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	ensure("profile", []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
	})
	ensure("project", []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "featured", Value: -1}}},
	})
	ensure("blog", []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "slug", Value: 1}}},
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "published", Value: 1}, {Key: "published_at", Value: -1}}},
	})

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
