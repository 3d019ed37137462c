// internal/app/store/announcement/announcement.go
package announcement

import (
	"context"
	"errors"

	"github.com/dalemusser/campusboard/internal/app/lifecycle"
	"github.com/dalemusser/campusboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists announcements in the "announcements" collection. It
// implements lifecycle.AnnouncementStore with ObjectID hex strings as the
// normalized identifier form.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// doc is the stored shape. The _id never leaves this package; public()
// projects it to the hex id of the public shape.
type doc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Message        string             `bson:"message"`
	StartDate      *string            `bson:"start_date,omitempty"`
	ExpirationDate string             `bson:"expiration_date"`
	IsActive       bool               `bson:"is_active"`
}

func (d doc) public() models.Announcement {
	return models.Announcement{
		ID:             d.ID.Hex(),
		Message:        d.Message,
		StartDate:      d.StartDate,
		ExpirationDate: d.ExpirationDate,
		IsActive:       d.IsActive,
	}
}

// ParseID validates a raw identifier and returns its normalized form.
func (s *Store) ParseID(raw string) (string, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Insert stores a new announcement and returns the assigned identifier.
func (s *Store) Insert(ctx context.Context, a models.Announcement) (string, error) {
	d := doc{
		ID:             primitive.NewObjectID(),
		Message:        a.Message,
		StartDate:      a.StartDate,
		ExpirationDate: a.ExpirationDate,
		IsActive:       a.IsActive,
	}
	res, err := s.c.InsertOne(ctx, d)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("insert returned no ObjectID")
	}
	return oid.Hex(), nil
}

// Get returns the announcement with the given id, or (nil, nil) if absent.
func (s *Store) Get(ctx context.Context, id string) (*models.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var d doc
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	a := d.public()
	return &a, nil
}

// Update applies only the supplied fields via $set and reports the store's
// matched/modified confirmation.
func (s *Store) Update(ctx context.Context, id string, fields lifecycle.UpdateFields) (lifecycle.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return lifecycle.UpdateResult{}, err
	}

	set := bson.M{}
	if fields.Message != nil {
		set["message"] = *fields.Message
	}
	if fields.StartDate != nil {
		set["start_date"] = *fields.StartDate
	}
	if fields.ExpirationDate != nil {
		set["expiration_date"] = *fields.ExpirationDate
	}
	if fields.IsActive != nil {
		set["is_active"] = *fields.IsActive
	}
	if len(set) == 0 {
		// Nothing to write; report a match so callers treat it as a no-op.
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return lifecycle.UpdateResult{}, err
		}
		return lifecycle.UpdateResult{Matched: n > 0}, nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return lifecycle.UpdateResult{}, err
	}
	return lifecycle.UpdateResult{
		Matched:  res.MatchedCount > 0,
		Modified: res.ModifiedCount > 0,
	}, nil
}

// Delete removes the announcement and reports whether anything matched.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Scan returns announcements matching the filter in collection order. The
// active filter is pushed into the query; date strings compare correctly
// because they are ISO calendar dates.
func (s *Store) Scan(ctx context.Context, filter lifecycle.ScanFilter) ([]models.Announcement, error) {
	query := bson.M{}
	if filter.ActiveOnly {
		query["is_active"] = true
		query["expiration_date"] = bson.M{"$gte": filter.Today}
	}

	cur, err := s.c.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Announcement
	for cur.Next(ctx) {
		var d doc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.public())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
