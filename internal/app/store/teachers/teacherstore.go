// internal/app/store/teachers/teacherstore.go
package teacherstore

import (
	"context"
	"errors"

	"github.com/dalemusser/campusboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the teacher directory, backed by the "teachers" collection.
// Teacher documents are keyed by username (_id).
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teachers")}
}

// Exists reports whether the username belongs to a known teacher.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": username}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Get loads a teacher by username, or (nil, nil) if absent.
func (s *Store) Get(ctx context.Context, username string) (*models.Teacher, error) {
	var t models.Teacher
	if err := s.c.FindOne(ctx, bson.M{"_id": username}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Ensure upserts a teacher record. Startup uses it to seed the directory so
// a fresh deployment has at least one identity that can manage announcements.
func (s *Store) Ensure(ctx context.Context, username, displayName string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": username},
		bson.M{"$set": bson.M{"display_name": displayName}},
		options.Update().SetUpsert(true),
	)
	return err
}
