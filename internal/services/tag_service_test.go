package services

import (
	"net/http"
	"testing"
)

func TestTagCreateAndListSorted(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "tag-create@example.com")

	if _, err := env.tag.CreateTag(ctx, TagCreateInput{Name: "zig"}); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if _, err := env.tag.CreateTag(ctx, TagCreateInput{Name: "algorithms", Color: strPtr("#ff0000")}); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	tags, err := env.tag.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 2 || tags[0].Name != "algorithms" || tags[1].Name != "zig" {
		t.Fatalf("expected tags sorted by name, got %+v", tags)
	}

	_, err = env.tag.CreateTag(ctx, TagCreateInput{Name: "  "})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestCourseTagLinkLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "tag-link@example.com")

	course, err := env.course.Create(ctx, CourseCreateInput{Title: "Course"})
	if err != nil {
		t.Fatalf("Create course: %v", err)
	}
	tag, err := env.tag.CreateTag(ctx, TagCreateInput{Name: "go"})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	link := CourseTagLinkInput{CourseID: course.ID, TagID: tag.ID}
	if err := env.tag.AddTagToCourse(ctx, link); err != nil {
		t.Fatalf("AddTagToCourse: %v", err)
	}

	// Linking the same pair twice is rejected.
	err = env.tag.AddTagToCourse(ctx, link)
	ae := wantStatus(t, err, http.StatusBadRequest)
	if ae.Code != "tag_already_added" {
		t.Fatalf("expected tag_already_added, got %q", ae.Code)
	}

	links, err := env.tag.ListCourseTags(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListCourseTags: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	if links[0].Tag == nil || links[0].Tag.Name != "go" {
		t.Fatalf("expected resolved tag, got %+v", links[0])
	}

	if err := env.tag.RemoveTagFromCourse(ctx, course.ID, tag.ID); err != nil {
		t.Fatalf("RemoveTagFromCourse: %v", err)
	}
	err = env.tag.RemoveTagFromCourse(ctx, course.ID, tag.ID)
	wantStatus(t, err, http.StatusNotFound)
}

func TestTagDeleteRemovesLinks(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "tag-delete@example.com")

	course, err := env.course.Create(ctx, CourseCreateInput{Title: "Course"})
	if err != nil {
		t.Fatalf("Create course: %v", err)
	}
	tag, err := env.tag.CreateTag(ctx, TagCreateInput{Name: "doomed"})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if err := env.tag.AddTagToCourse(ctx, CourseTagLinkInput{CourseID: course.ID, TagID: tag.ID}); err != nil {
		t.Fatalf("AddTagToCourse: %v", err)
	}

	if err := env.tag.DeleteTag(ctx, tag.ID); err != nil {
		t.Fatalf("DeleteTag: %v", err)
	}

	links, err := env.tag.ListCourseTags(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListCourseTags: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("expected links removed with tag, got %d", len(links))
	}
}

func TestTagOwnership(t *testing.T) {
	env := newTestEnv(t)
	_, ownerCtx := env.seedUser(t, "tag-owner@example.com")
	_, strangerCtx := env.seedUser(t, "tag-stranger@example.com")

	tag, err := env.tag.CreateTag(ownerCtx, TagCreateInput{Name: "mine"})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	err = env.tag.DeleteTag(strangerCtx, tag.ID)
	wantStatus(t, err, http.StatusNotFound)

	tags, err := env.tag.ListTags(strangerCtx)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("expected no tags for stranger, got %d", len(tags))
	}
}
