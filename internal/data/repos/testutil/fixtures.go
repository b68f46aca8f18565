package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/aartrack/aar-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test User",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uint, title string) *types.Course {
	tb.Helper()
	c := &types.Course{
		UserID:   userID,
		Title:    title,
		Status:   types.CourseStatusNotStarted,
		Priority: types.PriorityMedium,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedKnowledgePoint(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID uint, title string) *types.KnowledgePoint {
	tb.Helper()
	kp := &types.KnowledgePoint{
		CourseID: courseID,
		Title:    title,
	}
	if err := tx.WithContext(ctx).Create(kp).Error; err != nil {
		tb.Fatalf("seed knowledge point: %v", err)
	}
	return kp
}

func SeedActionItem(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID, userID uint, title string) *types.ActionItem {
	tb.Helper()
	item := &types.ActionItem{
		CourseID: courseID,
		UserID:   userID,
		Title:    title,
		Priority: types.PriorityMedium,
	}
	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		tb.Fatalf("seed action item: %v", err)
	}
	return item
}

func SeedReviewLog(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID, userID uint, title string) *types.ReviewLog {
	tb.Helper()
	rl := &types.ReviewLog{
		CourseID:           courseID,
		UserID:             userID,
		Title:              title,
		EmotionalIndicator: 3,
		ReviewDate:         time.Now(),
	}
	if err := tx.WithContext(ctx).Create(rl).Error; err != nil {
		tb.Fatalf("seed review log: %v", err)
	}
	return rl
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uint, name string) *types.Tag {
	tb.Helper()
	t := &types.Tag{
		UserID: userID,
		Name:   name,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return t
}

func SeedCourseTag(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID, tagID uint) *types.CourseTag {
	tb.Helper()
	ct := &types.CourseTag{
		CourseID: courseID,
		TagID:    tagID,
	}
	if err := tx.WithContext(ctx).Create(ct).Error; err != nil {
		tb.Fatalf("seed course tag: %v", err)
	}
	return ct
}
