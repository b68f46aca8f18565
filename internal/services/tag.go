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

type TagCreateInput struct {
	Name     string  `json:"name"`
	Color    *string `json:"color"`
	Category *string `json:"category"`
}

type CourseTagLinkInput struct {
	CourseID uint `json:"course_id"`
	TagID    uint `json:"tag_id"`
}

// CourseTagResolved is a link resolved to its tag.
type CourseTagResolved struct {
	CourseTagID uint       `json:"course_tag_id"`
	Tag         *types.Tag `json:"tag"`
}

type TagService interface {
	ListTags(ctx context.Context) ([]*types.Tag, error)
	CreateTag(ctx context.Context, in TagCreateInput) (*types.Tag, error)
	DeleteTag(ctx context.Context, tagID uint) error
	ListCourseTags(ctx context.Context, courseID uint) ([]*CourseTagResolved, error)
	AddTagToCourse(ctx context.Context, in CourseTagLinkInput) error
	RemoveTagFromCourse(ctx context.Context, courseID, tagID uint) error
}

type tagService struct {
	db            *gorm.DB
	log           *logger.Logger
	tagRepo       reviewrepo.TagRepo
	courseTagRepo reviewrepo.CourseTagRepo
}

func NewTagService(
	db *gorm.DB,
	baseLog *logger.Logger,
	tagRepo reviewrepo.TagRepo,
	courseTagRepo reviewrepo.CourseTagRepo,
) TagService {
	return &tagService{
		db:            db,
		log:           baseLog.With("service", "TagService"),
		tagRepo:       tagRepo,
		courseTagRepo: courseTagRepo,
	}
}

func (s *tagService) ListTags(ctx context.Context) ([]*types.Tag, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.tagRepo.ListByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list tags: %w", err))
	}
	return tags, nil
}

func (s *tagService) CreateTag(ctx context.Context, in TagCreateInput) (*types.Tag, error) {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperr.Validation(map[string]string{"name": "name is required"})
	}
	tag := &types.Tag{
		UserID:   rd.UserID,
		Name:     in.Name,
		Color:    in.Color,
		Category: in.Category,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.tagRepo.Create(ctx, tx, tag)
		return err
	}); err != nil {
		s.log.Error("Create tag failed", "error", err, "user_id", rd.UserID)
		return nil, apperr.Internal(fmt.Errorf("create tag: %w", err))
	}
	return tag, nil
}

func (s *tagService) DeleteTag(ctx context.Context, tagID uint) error {
	rd, err := requireIdentity(ctx)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.tagRepo.GetByIDAndUserID(ctx, tx, tagID, rd.UserID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load tag: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("tag_not_found", errors.New("tag not found"))
		}
		if err := s.courseTagRepo.DeleteByTagID(ctx, tx, tagID); err != nil {
			return apperr.Internal(fmt.Errorf("delete course tag links: %w", err))
		}
		if err := s.tagRepo.DeleteByID(ctx, tx, tagID); err != nil {
			return apperr.Internal(fmt.Errorf("delete tag: %w", err))
		}
		return nil
	})
}

func (s *tagService) ListCourseTags(ctx context.Context, courseID uint) ([]*CourseTagResolved, error) {
	if _, err := requireIdentity(ctx); err != nil {
		return nil, err
	}
	links, err := s.courseTagRepo.ListByCourseID(ctx, nil, courseID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list course tags: %w", err))
	}
	out := make([]*CourseTagResolved, 0, len(links))
	for _, link := range links {
		out = append(out, &CourseTagResolved{CourseTagID: link.ID, Tag: link.Tag})
	}
	return out, nil
}

// AddTagToCourse rejects an already-linked pair. The check is a read before
// the insert; there is no store-level unique constraint backing it.
func (s *tagService) AddTagToCourse(ctx context.Context, in CourseTagLinkInput) error {
	if _, err := requireIdentity(ctx); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.courseTagRepo.GetByCourseIDAndTagID(ctx, tx, in.CourseID, in.TagID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("check course tag: %w", err))
		}
		if existing != nil {
			return apperr.Conflict("tag_already_added", errors.New("tag already added to course"))
		}
		if _, err := s.courseTagRepo.Create(ctx, tx, &types.CourseTag{CourseID: in.CourseID, TagID: in.TagID}); err != nil {
			return apperr.Internal(fmt.Errorf("create course tag: %w", err))
		}
		return nil
	})
}

func (s *tagService) RemoveTagFromCourse(ctx context.Context, courseID, tagID uint) error {
	if _, err := requireIdentity(ctx); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.courseTagRepo.GetByCourseIDAndTagID(ctx, tx, courseID, tagID)
		if err != nil {
			return apperr.Internal(fmt.Errorf("load course tag: %w", err))
		}
		if existing == nil {
			return apperr.NotFound("course_tag_not_found", errors.New("course tag not found"))
		}
		if err := s.courseTagRepo.DeleteByID(ctx, tx, existing.ID); err != nil {
			return apperr.Internal(fmt.Errorf("delete course tag: %w", err))
		}
		return nil
	})
}
