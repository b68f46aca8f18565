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

type ActionItemCreateInput struct {
	CourseID         uint       `json:"course_id"`
	KnowledgePointID *uint      `json:"knowledge_point_id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	Priority         *string    `json:"priority"`
	DueDate          *time.Time `json:"due_date"`
}

type ActionItemUpdateInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
}

// ActionItemWithCourse pairs an item with a snapshot of its parent course;
// the course is null when it no longer exists.
type ActionItemWithCourse struct {
	ActionItem *types.ActionItem `json:"action_item"`
	Course     *types.Course     `json:"course"`
}

type ActionItemStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type ActionItemService interface {
	ListByCourse(ctx context.Context, courseID uint) ([]*types.ActionItem, error)
	ListByUser(ctx context.Context) ([]*ActionItemWithCourse, error)
	Stats(ctx context.Context) (*ActionItemStats, error)
	Create(ctx context.Context, in ActionItemCreateInput) (*types.ActionItem, error)
	Update(ctx context.Context, itemID uint, in ActionItemUpdateInput) (*types.ActionItem, error)
	Delete(ctx context.Context, itemID uint) error
}

type actionItemService struct {
	db             *gorm.DB
	log            *logger.Logger
	actionItemRepo reviewrepo.ActionItemRepo
	courseRepo     reviewrepo.CourseRepo
}

func NewActionItemService(
	db *gorm.DB,
	baseLog *logger.Logger,
	actionItemRepo reviewrepo.ActionItemRepo,
	courseRepo reviewrepo.CourseRepo,
) ActionItemService {
	return &actionItemService{
		db:             db,
		log:            baseLog.With("service", "ActionItemService"),
		actionItemRepo: actionItemRepo,
		courseRepo:     courseRepo,
	}
}

func (s *actionItemService) ListByCourse(ctx context.Context, courseID uint) ([]*types.ActionItem, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.actionItemRepo.ListByCourseIDAndUserID(ctx, nil, courseID, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list action items: %w", err))
	}
	return items, nil
}

func (s *actionItemService) ListByUser(ctx context.Context) ([]*ActionItemWithCourse, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.actionItemRepo.ListByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list action items: %w", err))
	}

	courseIDs := make([]uint, 0, len(items))
	seen := map[uint]bool{}
	for _, item := range items {
		if !seen[item.CourseID] {
			seen[item.CourseID] = true
			courseIDs = append(courseIDs, item.CourseID)
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

	out := make([]*ActionItemWithCourse, 0, len(items))
	for _, item := range items {
		out = append(out, &ActionItemWithCourse{
			ActionItem: item,
			Course:     byID[item.CourseID],
		})
	}
	return out, nil
}

func (s *actionItemService) Stats(ctx context.Context) (*ActionItemStats, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.actionItemRepo.ListByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("load action items: %w", err))
	}
	stats := &ActionItemStats{Total: len(items)}
	for _, item := range items {
		if item.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
	}
	return stats, nil
}

func (s *actionItemService) Create(ctx context.Context, in ActionItemCreateInput) (*types.ActionItem, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, apperr.Validation(map[string]string{"title": "title is required"})
	}

	priority := types.PriorityMedium
	if in.Priority != nil && *in.Priority != "" {
		priority = *in.Priority
	}
	item := &types.ActionItem{
		CourseID:         in.CourseID,
		KnowledgePointID: in.KnowledgePointID,
		UserID:           rd.UserID,
		Title:            in.Title,
		Description:      in.Description,
		Priority:         priority,
		Completed:        false,
		DueDate:          in.DueDate,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.actionItemRepo.Create(ctx, tx, item)
		return err
	}); err != nil {
		s.log.Error("Create action item failed", "error", err, "user_id", rd.UserID)
		return nil, apperr.Internal(fmt.Errorf("create action item: %w", err))
	}
	return item, nil
}

func (s *actionItemService) Update(ctx context.Context, itemID uint, in ActionItemUpdateInput) (*types.ActionItem, error) {
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
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Priority != nil {
		updates["priority"] = *in.Priority
	}
	if in.DueDate != nil {
		updates["due_date"] = *in.DueDate
	}

	var item *types.ActionItem
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.actionItemRepo.GetByIDAndUserID(ctx, tx, itemID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load action item: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("action_item_not_found", errors.New("action item not found"))
		}

		// Completing an item stamps completed_at; un-completing clears it.
		if in.Completed != nil {
			updates["completed"] = *in.Completed
			if *in.Completed && !existing.Completed {
				updates["completed_at"] = time.Now()
			} else if !*in.Completed {
				updates["completed_at"] = nil
			}
		}

		if err := s.actionItemRepo.UpdateFields(ctx, tx, itemID, updates); err != nil {
			return apperr.Internal(fmt.Errorf("update action item: %w", err))
		}
		item, err = s.actionItemRepo.GetByIDAndUserID(ctx, tx, itemID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("reload action item: %w", err))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *actionItemService) Delete(ctx context.Context, itemID uint) error {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.actionItemRepo.GetByIDAndUserID(ctx, tx, itemID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load action item: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("action_item_not_found", errors.New("action item not found"))
		}
		if err := s.actionItemRepo.DeleteByID(ctx, tx, itemID); err != nil {
			return apperr.Internal(fmt.Errorf("delete action item: %w", err))
		}
		return nil
	})
}
