package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	reviewrepo "github.com/aartrack/aar-backend/internal/data/repos/review"
	"github.com/aartrack/aar-backend/internal/data/repos/testutil"
	userrepo "github.com/aartrack/aar-backend/internal/data/repos/user"
	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/apperr"
	"github.com/aartrack/aar-backend/internal/pkg/ctxutil"
)

// testEnv wires every service against a per-test transaction so state never
// leaks between tests.
type testEnv struct {
	tx *gorm.DB

	auth           AuthService
	course         CourseService
	knowledgePoint KnowledgePointService
	actionItem     ActionItemService
	reviewLog      ReviewLogService
	tag            TagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)

	users := userrepo.NewUserRepo(tx, log)
	courses := reviewrepo.NewCourseRepo(tx, log)
	points := reviewrepo.NewKnowledgePointRepo(tx, log)
	items := reviewrepo.NewActionItemRepo(tx, log)
	logs := reviewrepo.NewReviewLogRepo(tx, log)
	tags := reviewrepo.NewTagRepo(tx, log)
	links := reviewrepo.NewCourseTagRepo(tx, log)

	return &testEnv{
		tx:             tx,
		auth:           NewAuthService(tx, log, users, "test-secret", time.Hour),
		course:         NewCourseService(tx, log, courses, points, items, logs, links),
		knowledgePoint: NewKnowledgePointService(tx, log, points, items),
		actionItem:     NewActionItemService(tx, log, items, courses),
		reviewLog:      NewReviewLogService(tx, log, logs, courses),
		tag:            NewTagService(tx, log, tags, links),
	}
}

func (e *testEnv) seedUser(t *testing.T, email string) (*types.User, context.Context) {
	t.Helper()
	u := testutil.SeedUser(t, context.Background(), e.tx, email)
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		UserID:    u.ID,
		UserEmail: u.Email,
		UserName:  u.Name,
	})
	return u, ctx
}

func wantStatus(t *testing.T, err error, status int) *apperr.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	ae, ok := apperr.As(err)
	if !ok {
		t.Fatalf("expected app error, got %v", err)
	}
	if ae.Status != status {
		t.Fatalf("expected status %d, got %d (%v)", status, ae.Status, err)
	}
	return ae
}
