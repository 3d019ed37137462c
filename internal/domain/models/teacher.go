// internal/domain/models/teacher.go
package models

// Teacher is a directory entry for a staff member allowed to manage
// announcements. The username doubles as the document key.
type Teacher struct {
	Username    string `bson:"_id" json:"username"`
	DisplayName string `bson:"display_name,omitempty" json:"display_name,omitempty"`
}
