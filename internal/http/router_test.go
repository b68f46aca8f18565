package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	reviewrepo "github.com/aartrack/aar-backend/internal/data/repos/review"
	"github.com/aartrack/aar-backend/internal/data/repos/testutil"
	userrepo "github.com/aartrack/aar-backend/internal/data/repos/user"
	httpH "github.com/aartrack/aar-backend/internal/http/handlers"
	httpMW "github.com/aartrack/aar-backend/internal/http/middleware"
	"github.com/aartrack/aar-backend/internal/services"
)

func newTestRouterConfig(t *testing.T) RouterConfig {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)

	users := userrepo.NewUserRepo(db, log)
	courses := reviewrepo.NewCourseRepo(db, log)
	points := reviewrepo.NewKnowledgePointRepo(db, log)
	items := reviewrepo.NewActionItemRepo(db, log)
	logs := reviewrepo.NewReviewLogRepo(db, log)
	tags := reviewrepo.NewTagRepo(db, log)
	links := reviewrepo.NewCourseTagRepo(db, log)

	auth := services.NewAuthService(db, log, users, "router-test-secret", time.Hour)

	return RouterConfig{
		CORSOrigins:    []string{"http://localhost:5173"},
		AuthMiddleware: httpMW.NewAuthMiddleware(log, auth),

		AuthHandler:           httpH.NewAuthHandler(auth),
		CourseHandler:         httpH.NewCourseHandler(services.NewCourseService(db, log, courses, points, items, logs, links)),
		KnowledgePointHandler: httpH.NewKnowledgePointHandler(services.NewKnowledgePointService(db, log, points, items)),
		ActionItemHandler:     httpH.NewActionItemHandler(services.NewActionItemService(db, log, items, courses)),
		ReviewLogHandler:      httpH.NewReviewLogHandler(services.NewReviewLogService(db, log, logs, courses)),
		TagHandler:            httpH.NewTagHandler(services.NewTagService(db, log, tags, links)),
		HealthHandler:         httpH.NewHealthHandler(),
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return NewRouter(newTestRouterConfig(t))
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret1",
		"name":     "Router Tester",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatalf("register: expected token")
	}
	return resp.Token
}

func TestHealthIsPublic(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/auth/me", "/api/courses", "/api/tags"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/courses", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r := newTestRouter(t)
	email := "flow@example.com"
	registerUser(t, r, email)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var login struct {
		User  struct{ Email string } `json:"user"`
		Token string                 `json:"token"`
	}
	decode(t, w, &login)
	if login.User.Email != email || login.Token == "" {
		t.Fatalf("login: unexpected response %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	var me struct {
		Email string `json:"email"`
	}
	decode(t, w, &me)
	if me.Email != email {
		t.Fatalf("me: expected %q, got %q", email, me.Email)
	}

	// Registering the same email again is a conflict.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret1",
		"name":     "Again",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", w.Code)
	}
}

func TestCourseEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "course-http@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/courses", token, map[string]any{
		"title":    "HTTP Course",
		"platform": "Coursera",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var course struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &course)
	if course.ID == 0 || course.Status != "not-started" {
		t.Fatalf("create: unexpected course %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/courses/%d", course.ID), token, map[string]any{
		"status":              "in-progress",
		"progress_percentage": 12.5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/courses/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}
	var stats struct {
		Total      int `json:"total"`
		InProgress int `json:"in_progress"`
	}
	decode(t, w, &stats)
	if stats.Total != 1 || stats.InProgress != 1 {
		t.Fatalf("stats: unexpected %s", w.Body.String())
	}

	// Another user cannot see or touch it.
	otherToken := registerUser(t, r, "course-http-other@example.com")
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/courses/%d", course.ID), otherToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-user get: expected 404, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/courses/%d", course.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	var deleted struct {
		Success bool `json:"success"`
	}
	decode(t, w, &deleted)
	if !deleted.Success {
		t.Fatalf("delete: expected success payload, got %s", w.Body.String())
	}
}

func TestCourseTagEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "tags-http@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/courses", token, map[string]any{"title": "Tagged"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create course: expected 201, got %d", w.Code)
	}
	var course struct {
		ID uint `json:"id"`
	}
	decode(t, w, &course)

	w = doJSON(t, r, http.MethodPost, "/api/tags", token, map[string]any{"name": "golang"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create tag: expected 201, got %d", w.Code)
	}
	var tag struct {
		ID uint `json:"id"`
	}
	decode(t, w, &tag)

	w = doJSON(t, r, http.MethodPost, "/api/tags/course", token, map[string]any{
		"course_id": course.ID,
		"tag_id":    tag.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("link: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tags/course/%d", course.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list links: expected 200, got %d", w.Code)
	}

	unlinkPath := fmt.Sprintf("/api/tags/course/%d/tag/%d", course.ID, tag.ID)
	w = doJSON(t, r, http.MethodDelete, unlinkPath, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unlink: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var unlinked struct {
		Success bool `json:"success"`
	}
	decode(t, w, &unlinked)
	if !unlinked.Success {
		t.Fatalf("unlink: expected success payload, got %s", w.Body.String())
	}

	// A second delete hits the service's not-found, not an unmatched route.
	w = doJSON(t, r, http.MethodDelete, unlinkPath, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unlink again: expected 404, got %d", w.Code)
	}
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, w, &resp)
	if resp.Error.Code != "course_tag_not_found" {
		t.Fatalf("unlink again: expected course_tag_not_found envelope, got %s", w.Body.String())
	}
}

func TestValidationErrorShape(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "error-shape@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/courses", token, map[string]any{"title": "  "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	decode(t, w, &resp)
	if resp.Error.Code != "validation_failed" {
		t.Fatalf("expected validation_failed, got %q", resp.Error.Code)
	}
	if _, ok := resp.Error.Fields["title"]; !ok {
		t.Fatalf("expected title field error, got %s", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent && w.Code != http.StatusOK {
		t.Fatalf("preflight: unexpected status %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("preflight: unexpected allow-origin %q", got)
	}
}
