// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAnnouncements(ctx, db); err != nil {
		problems = append(problems, "announcements: "+err.Error())
	}
	if err := ensureTeachers(ctx, db); err != nil {
		problems = append(problems, "teachers: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureAnnouncements backs the active-view scan: is_active equality plus an
// expiration_date range.
func ensureAnnouncements(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("announcements").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "is_active", Value: 1},
			{Key: "expiration_date", Value: 1},
		},
		Options: options.Index().SetName("active_window"),
	})
	return err
}

// ensureTeachers only needs the collection to exist; lookups are by _id.
func ensureTeachers(ctx context.Context, db *mongo.Database) error {
	if err := db.CreateCollection(ctx, "teachers"); err != nil {
		if isNamespaceExistsErr(err) {
			return nil
		}
		return err
	}
	return nil
}

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}
