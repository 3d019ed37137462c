// internal/app/features/announcements/handler.go
package announcements

import (
	"github.com/dalemusser/campusboard/internal/app/lifecycle"
	"github.com/dalemusser/campusboard/internal/app/store/announcement"
	teacherstore "github.com/dalemusser/campusboard/internal/app/store/teachers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Announcements handlers.
type Handler struct {
	Manager *lifecycle.Manager
	Log     *zap.Logger
}

// NewHandler constructs an Announcements Handler backed by the Mongo store
// and teacher directory.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Manager: lifecycle.New(teacherstore.New(db), announcement.New(db), logger),
		Log:     logger,
	}
}
