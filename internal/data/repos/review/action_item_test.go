package review

import (
	"context"
	"testing"

	"github.com/aartrack/aar-backend/internal/data/repos/testutil"
	types "github.com/aartrack/aar-backend/internal/domain"
)

func TestActionItemRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewActionItemRepo(db, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "itemrepo@example.com")
	course := testutil.SeedCourse(t, ctx, tx, owner.ID, "Course")
	point := testutil.SeedKnowledgePoint(t, ctx, tx, course.ID, "Point")

	item, err := repo.Create(ctx, tx, &types.ActionItem{
		CourseID:         course.ID,
		KnowledgePointID: &point.ID,
		UserID:           owner.ID,
		Title:            "Do the thing",
		Priority:         types.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByIDAndUserID(ctx, tx, item.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetByIDAndUserID: %v", err)
	}
	if got == nil || got.KnowledgePointID == nil || *got.KnowledgePointID != point.ID {
		t.Fatalf("GetByIDAndUserID: unexpected result: %+v", got)
	}

	if err := repo.ClearKnowledgePointRefs(ctx, tx, point.ID); err != nil {
		t.Fatalf("ClearKnowledgePointRefs: %v", err)
	}
	got, err = repo.GetByIDAndUserID(ctx, tx, item.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetByIDAndUserID after clear: %v", err)
	}
	if got.KnowledgePointID != nil {
		t.Fatalf("expected knowledge point ref cleared, got %v", *got.KnowledgePointID)
	}

	if err := repo.UpdateFields(ctx, tx, item.ID, map[string]interface{}{
		"completed": true,
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	list, err := repo.ListByCourseIDAndUserID(ctx, tx, course.ID, owner.ID)
	if err != nil {
		t.Fatalf("ListByCourseIDAndUserID: %v", err)
	}
	if len(list) != 1 || !list[0].Completed {
		t.Fatalf("ListByCourseIDAndUserID: unexpected result: %+v", list)
	}

	if err := repo.DeleteByCourseID(ctx, tx, course.ID); err != nil {
		t.Fatalf("DeleteByCourseID: %v", err)
	}
	list, err = repo.ListByUserID(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUserID after delete: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no items after course delete, got %d", len(list))
	}
}
