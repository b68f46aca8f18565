package services

import (
	"net/http"
	"testing"
)

func TestKnowledgePointLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "kp-lifecycle@example.com")

	course, err := env.course.Create(ctx, CourseCreateInput{Title: "Course"})
	if err != nil {
		t.Fatalf("Create course: %v", err)
	}

	point, err := env.knowledgePoint.Create(ctx, KnowledgePointCreateInput{
		CourseID: course.ID,
		Title:    "Interfaces",
		Content:  strPtr("accept interfaces, return structs"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := env.knowledgePoint.Update(ctx, point.ID, KnowledgePointUpdateInput{
		Summary: strPtr("short version"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Summary == nil || *updated.Summary != "short version" {
		t.Fatalf("expected summary updated, got %+v", updated)
	}
	if updated.Content == nil || *updated.Content != "accept interfaces, return structs" {
		t.Fatalf("expected untouched content preserved, got %+v", updated)
	}

	list, err := env.knowledgePoint.ListByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(list) != 1 || list[0].ID != point.ID {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := env.knowledgePoint.Delete(ctx, point.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = env.knowledgePoint.Update(ctx, point.ID, KnowledgePointUpdateInput{Title: strPtr("Gone")})
	wantStatus(t, err, http.StatusNotFound)
}

func TestKnowledgePointDeleteClearsItemRefs(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "kp-refs@example.com")

	course, err := env.course.Create(ctx, CourseCreateInput{Title: "Course"})
	if err != nil {
		t.Fatalf("Create course: %v", err)
	}
	point, err := env.knowledgePoint.Create(ctx, KnowledgePointCreateInput{CourseID: course.ID, Title: "Point"})
	if err != nil {
		t.Fatalf("Create point: %v", err)
	}
	item, err := env.actionItem.Create(ctx, ActionItemCreateInput{
		CourseID:         course.ID,
		KnowledgePointID: &point.ID,
		Title:            "Linked",
	})
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	if err := env.knowledgePoint.Delete(ctx, point.ID); err != nil {
		t.Fatalf("Delete point: %v", err)
	}

	// The item survives with its reference nulled.
	list, err := env.actionItem.ListByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(list) != 1 || list[0].ID != item.ID {
		t.Fatalf("expected item to survive, got %+v", list)
	}
	if list[0].KnowledgePointID != nil {
		t.Fatalf("expected knowledge point ref cleared, got %v", *list[0].KnowledgePointID)
	}
}
