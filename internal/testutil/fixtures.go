// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"

	"github.com/dalemusser/campusboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTeacher inserts a teacher directory entry keyed by username.
func (f *Fixtures) CreateTeacher(ctx context.Context, username, displayName string) models.Teacher {
	f.t.Helper()

	teacher := models.Teacher{
		Username:    username,
		DisplayName: displayName,
	}
	if _, err := f.db.Collection("teachers").InsertOne(ctx, teacher); err != nil {
		f.t.Fatalf("failed to create test teacher: %v", err)
	}
	return teacher
}

// CreateAnnouncement inserts an announcement document and returns its hex id
// along with the public shape.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, message string, startDate *string, expirationDate string, isActive bool) models.Announcement {
	f.t.Helper()

	id := primitive.NewObjectID()
	doc := bson.M{
		"_id":             id,
		"message":         message,
		"expiration_date": expirationDate,
		"is_active":       isActive,
	}
	if startDate != nil {
		doc["start_date"] = *startDate
	}
	if _, err := f.db.Collection("announcements").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}

	return models.Announcement{
		ID:             id.Hex(),
		Message:        message,
		StartDate:      startDate,
		ExpirationDate: expirationDate,
		IsActive:       isActive,
	}
}
