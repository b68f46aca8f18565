package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type TagRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tag *types.Tag) (*types.Tag, error)
	GetByIDAndUserID(ctx context.Context, tx *gorm.DB, tagID, userID uint) (*types.Tag, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Tag, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, tagID uint) error
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return &tagRepo{db: db, log: baseLog.With("repo", "TagRepo")}
}

func (r *tagRepo) Create(ctx context.Context, tx *gorm.DB, tag *types.Tag) (*types.Tag, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *tagRepo) GetByIDAndUserID(ctx context.Context, tx *gorm.DB, tagID, userID uint) (*types.Tag, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var t types.Tag
	err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", tagID, userID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUserID returns the user's tags alphabetically.
func (r *tagRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Tag, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Tag
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *tagRepo) DeleteByID(ctx context.Context, tx *gorm.DB, tagID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", tagID).
		Delete(&types.Tag{}).Error
}
