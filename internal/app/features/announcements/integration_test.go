package announcements_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/campusboard/internal/app/features/announcements"
	"github.com/dalemusser/campusboard/internal/domain/models"
	"github.com/dalemusser/campusboard/internal/testutil"
	"go.uber.org/zap"
)

// These tests run the handlers against a real Mongo-backed Manager; they skip
// unless a test database is configured.

func TestDelete_MongoBacked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := announcements.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateTeacher(ctx, "mrodriguez", "Ms. Rodriguez")
	seeded := fx.CreateAnnouncement(ctx, "spirit week", nil, "2099-01-01", true)

	req := httptest.NewRequest(http.MethodDelete, "/"+seeded.ID+"?teacher_username=mrodriguez", nil)
	req = testutil.WithChiURLParam(req, "id", seeded.ID)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	// A second delete finds nothing.
	req = httptest.NewRequest(http.MethodDelete, "/"+seeded.ID+"?teacher_username=mrodriguez", nil)
	req = testutil.WithChiURLParam(req, "id", seeded.ID)
	rec = httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: got %d, want 404", rec.Code)
	}
}

func TestUpdate_MongoBacked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := announcements.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateTeacher(ctx, "mrodriguez", "Ms. Rodriguez")
	seeded := fx.CreateAnnouncement(ctx, "book fair", nil, "2099-01-01", true)

	req := httptest.NewRequest(http.MethodPut, "/"+seeded.ID+"?teacher_username=mrodriguez",
		strings.NewReader(`{"is_active":false}`))
	req = testutil.WithChiURLParam(req, "id", seeded.ID)
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var got models.Announcement
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.IsActive {
		t.Error("is_active should be false")
	}
	if got.Message != "book fair" {
		t.Errorf("message changed: %q", got.Message)
	}
}
