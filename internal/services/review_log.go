package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	reviewrepo "github.com/aartrack/aar-backend/internal/data/repos/review"
	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/apperr"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type ReviewLogCreateInput struct {
	CourseID            uint       `json:"course_id"`
	Title               string     `json:"title"`
	Reflection          *string    `json:"reflection"`
	ApplicationInsights *string    `json:"application_insights"`
	KeyTakeaways        *string    `json:"key_takeaways"`
	EmotionalIndicator  *int       `json:"emotional_indicator"`
	ReviewDate          *time.Time `json:"review_date"`
}

type ReviewLogUpdateInput struct {
	Title               *string `json:"title"`
	Reflection          *string `json:"reflection"`
	ApplicationInsights *string `json:"application_insights"`
	KeyTakeaways        *string `json:"key_takeaways"`
	EmotionalIndicator  *int    `json:"emotional_indicator"`
}

type ReviewLogWithCourse struct {
	ReviewLog *types.ReviewLog `json:"review_log"`
	Course    *types.Course    `json:"course"`
}

type ReviewLogService interface {
	ListByCourse(ctx context.Context, courseID uint) ([]*types.ReviewLog, error)
	ListByUser(ctx context.Context) ([]*ReviewLogWithCourse, error)
	Create(ctx context.Context, in ReviewLogCreateInput) (*types.ReviewLog, error)
	Update(ctx context.Context, logID uint, in ReviewLogUpdateInput) (*types.ReviewLog, error)
	Delete(ctx context.Context, logID uint) error
}

type reviewLogService struct {
	db            *gorm.DB
	log           *logger.Logger
	reviewLogRepo reviewrepo.ReviewLogRepo
	courseRepo    reviewrepo.CourseRepo
}

func NewReviewLogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	reviewLogRepo reviewrepo.ReviewLogRepo,
	courseRepo reviewrepo.CourseRepo,
) ReviewLogService {
	return &reviewLogService{
		db:            db,
		log:           baseLog.With("service", "ReviewLogService"),
		reviewLogRepo: reviewLogRepo,
		courseRepo:    courseRepo,
	}
}

func (s *reviewLogService) ListByCourse(ctx context.Context, courseID uint) ([]*types.ReviewLog, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.reviewLogRepo.ListByCourseIDAndUserID(ctx, nil, courseID, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list review logs: %w", err))
	}
	return logs, nil
}

func (s *reviewLogService) ListByUser(ctx context.Context) ([]*ReviewLogWithCourse, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.reviewLogRepo.ListByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list review logs: %w", err))
	}

	courseIDs := make([]uint, 0, len(logs))
	seen := map[uint]bool{}
	for _, rl := range logs {
		if !seen[rl.CourseID] {
			seen[rl.CourseID] = true
			courseIDs = append(courseIDs, rl.CourseID)
		}
	}
	courses, err := s.courseRepo.GetByIDs(ctx, nil, courseIDs)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("load courses: %w", err))
	}
	byID := make(map[uint]*types.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	out := make([]*ReviewLogWithCourse, 0, len(logs))
	for _, rl := range logs {
		out = append(out, &ReviewLogWithCourse{
			ReviewLog: rl,
			Course:    byID[rl.CourseID],
		})
	}
	return out, nil
}

func (s *reviewLogService) Create(ctx context.Context, in ReviewLogCreateInput) (*types.ReviewLog, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)

	fields := map[string]string{}
	if in.Title == "" {
		fields["title"] = "title is required"
	}
	indicator := 3
	if in.EmotionalIndicator != nil {
		indicator = *in.EmotionalIndicator
	}
	if indicator < 1 || indicator > 5 {
		fields["emotional_indicator"] = "emotional indicator must be between 1 and 5"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	reviewDate := time.Now()
	if in.ReviewDate != nil {
		reviewDate = *in.ReviewDate
	}
	rl := &types.ReviewLog{
		CourseID:            in.CourseID,
		UserID:              rd.UserID,
		Title:               in.Title,
		Reflection:          in.Reflection,
		ApplicationInsights: in.ApplicationInsights,
		KeyTakeaways:        in.KeyTakeaways,
		EmotionalIndicator:  indicator,
		ReviewDate:          reviewDate,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.reviewLogRepo.Create(ctx, tx, rl)
		return err
	}); err != nil {
		s.log.Error("Create review log failed", "error", err, "user_id", rd.UserID)
		return nil, apperr.Internal(fmt.Errorf("create review log: %w", err))
	}
	return rl, nil
}

func (s *reviewLogService) Update(ctx context.Context, logID uint, in ReviewLogUpdateInput) (*types.ReviewLog, error) {
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
	if in.Reflection != nil {
		updates["reflection"] = *in.Reflection
	}
	if in.ApplicationInsights != nil {
		updates["application_insights"] = *in.ApplicationInsights
	}
	if in.KeyTakeaways != nil {
		updates["key_takeaways"] = *in.KeyTakeaways
	}
	if in.EmotionalIndicator != nil {
		if *in.EmotionalIndicator < 1 || *in.EmotionalIndicator > 5 {
			return nil, apperr.Validation(map[string]string{"emotional_indicator": "emotional indicator must be between 1 and 5"})
		}
		updates["emotional_indicator"] = *in.EmotionalIndicator
	}

	var rl *types.ReviewLog
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.reviewLogRepo.GetByIDAndUserID(ctx, tx, logID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load review log: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("review_log_not_found", errors.New("review log not found"))
		}
		if err := s.reviewLogRepo.UpdateFields(ctx, tx, logID, updates); err != nil {
			return apperr.Internal(fmt.Errorf("update review log: %w", err))
		}
		rl, err = s.reviewLogRepo.GetByIDAndUserID(ctx, tx, logID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("reload review log: %w", err))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return rl, nil
}

func (s *reviewLogService) Delete(ctx context.Context, logID uint) error {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.reviewLogRepo.GetByIDAndUserID(ctx, tx, logID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load review log: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("review_log_not_found", errors.New("review log not found"))
		}
		if err := s.reviewLogRepo.DeleteByID(ctx, tx, logID); err != nil {
			return apperr.Internal(fmt.Errorf("delete review log: %w", err))
		}
		return nil
	})
}
