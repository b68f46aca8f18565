package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type ReviewLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, reviewLog *types.ReviewLog) (*types.ReviewLog, error)
	GetByIDAndUserID(ctx context.Context, tx *gorm.DB, logID, userID uint) (*types.ReviewLog, error)
	ListByCourseIDAndUserID(ctx context.Context, tx *gorm.DB, courseID, userID uint) ([]*types.ReviewLog, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.ReviewLog, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, logID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, tx *gorm.DB, logID uint) error
	DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error
}

type reviewLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewLogRepo(db *gorm.DB, baseLog *logger.Logger) ReviewLogRepo {
	return &reviewLogRepo{db: db, log: baseLog.With("repo", "ReviewLogRepo")}
}

func (r *reviewLogRepo) Create(ctx context.Context, tx *gorm.DB, reviewLog *types.ReviewLog) (*types.ReviewLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(reviewLog).Error; err != nil {
		return nil, err
	}
	return reviewLog, nil
}

func (r *reviewLogRepo) GetByIDAndUserID(ctx context.Context, tx *gorm.DB, logID, userID uint) (*types.ReviewLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rl types.ReviewLog
	err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&rl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rl, nil
}

// Review logs are ordered by the review date itself, not creation time.
func (r *reviewLogRepo) ListByCourseIDAndUserID(ctx context.Context, tx *gorm.DB, courseID, userID uint) ([]*types.ReviewLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ReviewLog
	if err := transaction.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Order("review_date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reviewLogRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.ReviewLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ReviewLog
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("review_date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reviewLogRepo) UpdateFields(ctx context.Context, tx *gorm.DB, logID uint, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.ReviewLog{}).
		Where("id = ?", logID).
		Updates(updates).Error
}

func (r *reviewLogRepo) DeleteByID(ctx context.Context, tx *gorm.DB, logID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", logID).
		Delete(&types.ReviewLog{}).Error
}

func (r *reviewLogRepo) DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&types.ReviewLog{}).Error
}
