package review

import (
	"context"
	"testing"

	"github.com/aartrack/aar-backend/internal/data/repos/testutil"
)

func TestKnowledgePointRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewKnowledgePointRepo(db, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "pointrepo@example.com")
	course := testutil.SeedCourse(t, ctx, tx, owner.ID, "Course")

	point := testutil.SeedKnowledgePoint(t, ctx, tx, course.ID, "Closures")

	got, err := repo.GetByID(ctx, tx, point.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Title != "Closures" {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	if err := repo.UpdateFields(ctx, tx, point.ID, map[string]interface{}{
		"title": "Closures and scope",
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	list, err := repo.ListByCourseID(ctx, tx, course.ID)
	if err != nil {
		t.Fatalf("ListByCourseID: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Closures and scope" {
		t.Fatalf("ListByCourseID: unexpected result: %+v", list)
	}

	if err := repo.DeleteByCourseID(ctx, tx, course.ID); err != nil {
		t.Fatalf("DeleteByCourseID: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, point.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected point gone, got %+v", got)
	}
}
