package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	reviewrepo "github.com/aartrack/aar-backend/internal/data/repos/review"
	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/apperr"
	"github.com/aartrack/aar-backend/internal/pkg/ctxutil"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type CourseCreateInput struct {
	Title         string     `json:"title"`
	Platform      *string    `json:"platform"`
	Instructor    *string    `json:"instructor"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	CourseURL     *string    `json:"course_url"`
	Description   *string    `json:"description"`
	TotalChapters *int       `json:"total_chapters"`
}

// CourseUpdateInput models a partial update: only non-nil fields are applied.
type CourseUpdateInput struct {
	Title              *string  `json:"title"`
	Platform           *string  `json:"platform"`
	Instructor         *string  `json:"instructor"`
	Status             *string  `json:"status"`
	ProgressPercentage *float64 `json:"progress_percentage"`
	CompletedChapters  *int     `json:"completed_chapters"`
	TotalChapters      *int     `json:"total_chapters"`
	Priority           *string  `json:"priority"`
	Description        *string  `json:"description"`
	CourseURL          *string  `json:"course_url"`
}

type CourseStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
}

type CourseService interface {
	List(ctx context.Context) ([]*types.Course, error)
	Stats(ctx context.Context) (*CourseStats, error)
	Get(ctx context.Context, courseID uint) (*types.Course, error)
	Create(ctx context.Context, in CourseCreateInput) (*types.Course, error)
	Update(ctx context.Context, courseID uint, in CourseUpdateInput) (*types.Course, error)
	Delete(ctx context.Context, courseID uint) error
}

type courseService struct {
	db             *gorm.DB
	log            *logger.Logger
	courseRepo     reviewrepo.CourseRepo
	pointRepo      reviewrepo.KnowledgePointRepo
	actionItemRepo reviewrepo.ActionItemRepo
	reviewLogRepo  reviewrepo.ReviewLogRepo
	courseTagRepo  reviewrepo.CourseTagRepo
}

func NewCourseService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo reviewrepo.CourseRepo,
	pointRepo reviewrepo.KnowledgePointRepo,
	actionItemRepo reviewrepo.ActionItemRepo,
	reviewLogRepo reviewrepo.ReviewLogRepo,
	courseTagRepo reviewrepo.CourseTagRepo,
) CourseService {
	return &courseService{
		db:             db,
		log:            baseLog.With("service", "CourseService"),
		courseRepo:     courseRepo,
		pointRepo:      pointRepo,
		actionItemRepo: actionItemRepo,
		reviewLogRepo:  reviewLogRepo,
		courseTagRepo:  courseTagRepo,
	}
}

func (s *courseService) List(ctx context.Context) ([]*types.Course, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.ListByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list courses: %w", err))
	}
	return courses, nil
}

func (s *courseService) Stats(ctx context.Context) (*CourseStats, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.ListByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("load courses: %w", err))
	}
	stats := &CourseStats{Total: len(courses)}
	for _, c := range courses {
		switch c.Status {
		case types.CourseStatusCompleted:
			stats.Completed++
		case types.CourseStatusInProgress:
			stats.InProgress++
		case types.CourseStatusNotStarted:
			stats.NotStarted++
		}
	}
	return stats, nil
}

func (s *courseService) Get(ctx context.Context, courseID uint) (*types.Course, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetByIDAndUserID(ctx, nil, courseID, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("load course: %w", err))
	}
	if course == nil {
		return nil, apperr.NotFound("course_not_found", errors.New("course not found"))
	}
	return course, nil
}

func (s *courseService) Create(ctx context.Context, in CourseCreateInput) (*types.Course, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, apperr.Validation(map[string]string{"title": "title is required"})
	}

	totalChapters := 0
	if in.TotalChapters != nil {
		totalChapters = *in.TotalChapters
	}
	course := &types.Course{
		UserID:        rd.UserID,
		Title:         in.Title,
		Platform:      in.Platform,
		Instructor:    in.Instructor,
		PurchaseDate:  in.PurchaseDate,
		CourseURL:     in.CourseURL,
		Description:   in.Description,
		Status:        types.CourseStatusNotStarted,
		Priority:      types.PriorityMedium,
		TotalChapters: totalChapters,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.courseRepo.Create(ctx, tx, course)
		return err
	}); err != nil {
		s.log.Error("Create course failed", "error", err, "user_id", rd.UserID)
		return nil, apperr.Internal(fmt.Errorf("create course: %w", err))
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, courseID uint, in CourseUpdateInput) (*types.Course, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperr.Validation(map[string]string{"title": "title is required"})
		}
		updates["title"] = title
	}
	if in.Platform != nil {
		updates["platform"] = *in.Platform
	}
	if in.Instructor != nil {
		updates["instructor"] = *in.Instructor
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.ProgressPercentage != nil {
		updates["progress_percentage"] = roundToTwoDecimals(*in.ProgressPercentage)
	}
	if in.CompletedChapters != nil {
		updates["completed_chapters"] = *in.CompletedChapters
	}
	if in.TotalChapters != nil {
		updates["total_chapters"] = *in.TotalChapters
	}
	if in.Priority != nil {
		updates["priority"] = *in.Priority
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.CourseURL != nil {
		updates["course_url"] = *in.CourseURL
	}

	var course *types.Course
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.courseRepo.GetByIDAndUserID(ctx, tx, courseID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load course: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("course_not_found", errors.New("course not found"))
		}
		if err := s.courseRepo.UpdateFields(ctx, tx, courseID, updates); err != nil {
			return apperr.Internal(fmt.Errorf("update course: %w", err))
		}
		course, err = s.courseRepo.GetByIDAndUserID(ctx, tx, courseID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("reload course: %w", err))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes the course and everything hanging off it: knowledge points,
// action items, review logs and tag links, all in one transaction.
func (s *courseService) Delete(ctx context.Context, courseID uint) error {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.courseRepo.GetByIDAndUserID(ctx, tx, courseID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load course: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("course_not_found", errors.New("course not found"))
		}
		if err := s.pointRepo.DeleteByCourseID(ctx, tx, courseID); err != nil {
			return apperr.Internal(fmt.Errorf("delete knowledge points: %w", err))
		}
		if err := s.actionItemRepo.DeleteByCourseID(ctx, tx, courseID); err != nil {
			return apperr.Internal(fmt.Errorf("delete action items: %w", err))
		}
		if err := s.reviewLogRepo.DeleteByCourseID(ctx, tx, courseID); err != nil {
			return apperr.Internal(fmt.Errorf("delete review logs: %w", err))
		}
		if err := s.courseTagRepo.DeleteByCourseID(ctx, tx, courseID); err != nil {
			return apperr.Internal(fmt.Errorf("delete course tags: %w", err))
		}
		if err := s.courseRepo.DeleteByID(ctx, tx, courseID); err != nil {
			return apperr.Internal(fmt.Errorf("delete course: %w", err))
		}
		return nil
	})
}

func requireIdentity(ctx context.Context) (*ctxutil.RequestData, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == 0 {
		return nil, apperr.Unauthorized("unauthorized", errors.New("no identity in context"))
	}
	return rd, nil
}

// Progress percentage is stored with two-decimal precision.
func roundToTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
