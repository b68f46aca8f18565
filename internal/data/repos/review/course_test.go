package review

import (
	"context"
	"testing"
	"time"

	"github.com/aartrack/aar-backend/internal/data/repos/testutil"
	types "github.com/aartrack/aar-backend/internal/domain"
)

func TestCourseRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCourseRepo(db, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "courserepo@example.com")
	other := testutil.SeedUser(t, ctx, tx, "courserepo-other@example.com")

	first := testutil.SeedCourse(t, ctx, tx, owner.ID, "First")
	second := testutil.SeedCourse(t, ctx, tx, owner.ID, "Second")
	testutil.SeedCourse(t, ctx, tx, other.ID, "Theirs")

	got, err := repo.GetByIDAndUserID(ctx, tx, first.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetByIDAndUserID: %v", err)
	}
	if got == nil || got.Title != "First" {
		t.Fatalf("GetByIDAndUserID: unexpected result: %+v", got)
	}

	got, err = repo.GetByIDAndUserID(ctx, tx, first.ID, other.ID)
	if err != nil {
		t.Fatalf("GetByIDAndUserID wrong owner: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByIDAndUserID wrong owner: expected nil, got %+v", got)
	}

	// Touching first makes it the most recently updated.
	time.Sleep(10 * time.Millisecond)
	if err := repo.UpdateFields(ctx, tx, first.ID, map[string]interface{}{
		"status": types.CourseStatusInProgress,
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	list, err := repo.ListByUserID(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListByUserID: expected 2 courses, got %d", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("ListByUserID: expected most recently updated first, got %d then %d", list[0].ID, list[1].ID)
	}
	if list[0].Status != types.CourseStatusInProgress {
		t.Fatalf("ListByUserID: expected updated status, got %q", list[0].Status)
	}

	byIDs, err := repo.GetByIDs(ctx, tx, []uint{first.ID, second.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(byIDs) != 2 {
		t.Fatalf("GetByIDs: expected 2 courses, got %d", len(byIDs))
	}

	if err := repo.DeleteByID(ctx, tx, second.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	list, err = repo.ListByUserID(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUserID after delete: %v", err)
	}
	if len(list) != 1 || list[0].ID != first.ID {
		t.Fatalf("ListByUserID after delete: unexpected result: %+v", list)
	}
}
