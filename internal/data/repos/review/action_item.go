package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type ActionItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *types.ActionItem) (*types.ActionItem, error)
	GetByIDAndUserID(ctx context.Context, tx *gorm.DB, itemID, userID uint) (*types.ActionItem, error)
	ListByCourseIDAndUserID(ctx context.Context, tx *gorm.DB, courseID, userID uint) ([]*types.ActionItem, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.ActionItem, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, itemID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, tx *gorm.DB, itemID uint) error
	DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error
	ClearKnowledgePointRefs(ctx context.Context, tx *gorm.DB, pointID uint) error
}

type actionItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActionItemRepo(db *gorm.DB, baseLog *logger.Logger) ActionItemRepo {
	return &actionItemRepo{db: db, log: baseLog.With("repo", "ActionItemRepo")}
}

func (r *actionItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.ActionItem) (*types.ActionItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *actionItemRepo) GetByIDAndUserID(ctx context.Context, tx *gorm.DB, itemID, userID uint) (*types.ActionItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var item types.ActionItem
	err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *actionItemRepo) ListByCourseIDAndUserID(ctx context.Context, tx *gorm.DB, courseID, userID uint) ([]*types.ActionItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ActionItem
	if err := transaction.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *actionItemRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.ActionItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ActionItem
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *actionItemRepo) UpdateFields(ctx context.Context, tx *gorm.DB, itemID uint, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.ActionItem{}).
		Where("id = ?", itemID).
		Updates(updates).Error
}

func (r *actionItemRepo) DeleteByID(ctx context.Context, tx *gorm.DB, itemID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&types.ActionItem{}).Error
}

func (r *actionItemRepo) DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&types.ActionItem{}).Error
}

// ClearKnowledgePointRefs nulls the knowledge-point reference on items that
// point at the given knowledge point. The items themselves survive.
func (r *actionItemRepo) ClearKnowledgePointRefs(ctx context.Context, tx *gorm.DB, pointID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.ActionItem{}).
		Where("knowledge_point_id = ?", pointID).
		Update("knowledge_point_id", nil).Error
}
