// internal/domain/models/announcement.go
package models

// Announcement is the public shape of an announcement as returned to
// transport callers. ID is the normalized string form of the storage key;
// the raw storage key itself is never exposed.
//
// Dates are calendar dates in YYYY-MM-DD form with no time component.
// Because the strings are ISO-ordered, lexicographic comparison matches
// calendar comparison.
type Announcement struct {
	ID             string  `bson:"-" json:"id"`
	Message        string  `bson:"message" json:"message"`
	StartDate      *string `bson:"start_date,omitempty" json:"start_date,omitempty"`
	ExpirationDate string  `bson:"expiration_date" json:"expiration_date"`
	IsActive       bool    `bson:"is_active" json:"is_active"`
}
