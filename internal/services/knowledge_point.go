package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	reviewrepo "github.com/aartrack/aar-backend/internal/data/repos/review"
	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/apperr"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type KnowledgePointCreateInput struct {
	CourseID      uint    `json:"course_id"`
	Title         string  `json:"title"`
	Content       *string `json:"content"`
	Summary       *string `json:"summary"`
	PersonalNotes *string `json:"personal_notes"`
}

type KnowledgePointUpdateInput struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Summary       *string `json:"summary"`
	PersonalNotes *string `json:"personal_notes"`
}

// KnowledgePointService scopes nothing to the caller: reads and writes check
// only that the point exists, mirroring the long-standing behavior of the
// endpoints it backs.
type KnowledgePointService interface {
	ListByCourse(ctx context.Context, courseID uint) ([]*types.KnowledgePoint, error)
	Create(ctx context.Context, in KnowledgePointCreateInput) (*types.KnowledgePoint, error)
	Update(ctx context.Context, pointID uint, in KnowledgePointUpdateInput) (*types.KnowledgePoint, error)
	Delete(ctx context.Context, pointID uint) error
}

type knowledgePointService struct {
	db             *gorm.DB
	log            *logger.Logger
	pointRepo      reviewrepo.KnowledgePointRepo
	actionItemRepo reviewrepo.ActionItemRepo
}

func NewKnowledgePointService(
	db *gorm.DB,
	baseLog *logger.Logger,
	pointRepo reviewrepo.KnowledgePointRepo,
	actionItemRepo reviewrepo.ActionItemRepo,
) KnowledgePointService {
	return &knowledgePointService{
		db:             db,
		log:            baseLog.With("service", "KnowledgePointService"),
		pointRepo:      pointRepo,
		actionItemRepo: actionItemRepo,
	}
}

func (s *knowledgePointService) ListByCourse(ctx context.Context, courseID uint) ([]*types.KnowledgePoint, error) {
	if _, err := requireIdentity(ctx); err != nil {
		return nil, err
	}
	points, err := s.pointRepo.ListByCourseID(ctx, nil, courseID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list knowledge points: %w", err))
	}
	return points, nil
}

func (s *knowledgePointService) Create(ctx context.Context, in KnowledgePointCreateInput) (*types.KnowledgePoint, error) {
	if _, err := requireIdentity(ctx); err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, apperr.Validation(map[string]string{"title": "title is required"})
	}
	point := &types.KnowledgePoint{
		CourseID:      in.CourseID,
		Title:         in.Title,
		Content:       in.Content,
		Summary:       in.Summary,
		PersonalNotes: in.PersonalNotes,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.pointRepo.Create(ctx, tx, point)
		return err
	}); err != nil {
		s.log.Error("Create knowledge point failed", "error", err, "course_id", in.CourseID)
		return nil, apperr.Internal(fmt.Errorf("create knowledge point: %w", err))
	}
	return point, nil
}

func (s *knowledgePointService) Update(ctx context.Context, pointID uint, in KnowledgePointUpdateInput) (*types.KnowledgePoint, error) {
	if _, err := requireIdentity(ctx); err != nil {
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
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.Summary != nil {
		updates["summary"] = *in.Summary
	}
	if in.PersonalNotes != nil {
		updates["personal_notes"] = *in.PersonalNotes
	}

	var point *types.KnowledgePoint
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.pointRepo.GetByID(ctx, tx, pointID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load knowledge point: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("knowledge_point_not_found", errors.New("knowledge point not found"))
		}
		if err := s.pointRepo.UpdateFields(ctx, tx, pointID, updates); err != nil {
			return apperr.Internal(fmt.Errorf("update knowledge point: %w", err))
		}
		point, err = s.pointRepo.GetByID(ctx, tx, pointID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("reload knowledge point: %w", err))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return point, nil
}

// Delete removes the point and clears references on action items; the items
// themselves are kept.
func (s *knowledgePointService) Delete(ctx context.Context, pointID uint) error {
	if _, err := requireIdentity(ctx); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.pointRepo.GetByID(ctx, tx, pointID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load knowledge point: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("knowledge_point_not_found", errors.New("knowledge point not found"))
		}
		if err := s.actionItemRepo.ClearKnowledgePointRefs(ctx, tx, pointID); err != nil {
			return apperr.Internal(fmt.Errorf("clear action item refs: %w", err))
		}
		if err := s.pointRepo.DeleteByID(ctx, tx, pointID); err != nil {
			return apperr.Internal(fmt.Errorf("delete knowledge point: %w", err))
		}
		return nil
	})
}
