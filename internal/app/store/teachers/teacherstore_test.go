package teacherstore_test

import (
	"testing"

	teacherstore "github.com/dalemusser/campusboard/internal/app/store/teachers"
	"github.com/dalemusser/campusboard/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := teacherstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	testutil.NewFixtures(t, db).CreateTeacher(ctx, "mrodriguez", "Ms. Rodriguez")

	known, err := s.Exists(ctx, "mrodriguez")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !known {
		t.Error("seeded teacher not found")
	}

	known, err = s.Exists(ctx, "nobody")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if known {
		t.Error("unknown username reported as existing")
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := teacherstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := s.Ensure(ctx, "jchen", "Mr. Chen"); err != nil {
		t.Fatalf("first Ensure failed: %v", err)
	}
	if err := s.Ensure(ctx, "jchen", "Mr. J. Chen"); err != nil {
		t.Fatalf("second Ensure failed: %v", err)
	}

	teacher, err := s.Get(ctx, "jchen")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if teacher == nil {
		t.Fatal("ensured teacher not found")
	}
	if teacher.DisplayName != "Mr. J. Chen" {
		t.Errorf("display name: got %q, want the re-ensured value", teacher.DisplayName)
	}

	n, err := db.Collection("teachers").CountDocuments(ctx, bson.M{"_id": "jchen"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly one document, got %d", n)
	}
}

func TestGetAbsent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := teacherstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher, err := s.Get(ctx, "ghost")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if teacher != nil {
		t.Fatalf("expected nil for absent teacher, got %+v", teacher)
	}
}
