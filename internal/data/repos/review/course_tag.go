package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type CourseTagRepo interface {
	Create(ctx context.Context, tx *gorm.DB, link *types.CourseTag) (*types.CourseTag, error)
	GetByCourseIDAndTagID(ctx context.Context, tx *gorm.DB, courseID, tagID uint) (*types.CourseTag, error)
	ListByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.CourseTag, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, linkID uint) error
	DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error
	DeleteByTagID(ctx context.Context, tx *gorm.DB, tagID uint) error
}

type courseTagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseTagRepo(db *gorm.DB, baseLog *logger.Logger) CourseTagRepo {
	return &courseTagRepo{db: db, log: baseLog.With("repo", "CourseTagRepo")}
}

func (r *courseTagRepo) Create(ctx context.Context, tx *gorm.DB, link *types.CourseTag) (*types.CourseTag, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *courseTagRepo) GetByCourseIDAndTagID(ctx context.Context, tx *gorm.DB, courseID, tagID uint) (*types.CourseTag, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var link types.CourseTag
	err := transaction.WithContext(ctx).
		Where("course_id = ? AND tag_id = ?", courseID, tagID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByCourseID resolves each link to its tag.
func (r *courseTagRepo) ListByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.CourseTag, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.CourseTag
	if err := transaction.WithContext(ctx).
		Preload("Tag").
		Where("course_id = ?", courseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseTagRepo) DeleteByID(ctx context.Context, tx *gorm.DB, linkID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", linkID).
		Delete(&types.CourseTag{}).Error
}

func (r *courseTagRepo) DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&types.CourseTag{}).Error
}

func (r *courseTagRepo) DeleteByTagID(ctx context.Context, tx *gorm.DB, tagID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("tag_id = ?", tagID).
		Delete(&types.CourseTag{}).Error
}
