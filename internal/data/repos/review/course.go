package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type CourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, course *types.Course) (*types.Course, error)
	GetByID(ctx context.Context, tx *gorm.DB, courseID uint) (*types.Course, error)
	GetByIDAndUserID(ctx context.Context, tx *gorm.DB, courseID, userID uint) (*types.Course, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*types.Course, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Course, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, courseID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, tx *gorm.DB, courseID uint) error
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (r *courseRepo) Create(ctx context.Context, tx *gorm.DB, course *types.Course) (*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (r *courseRepo) GetByID(ctx context.Context, tx *gorm.DB, courseID uint) (*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var c types.Course
	err := transaction.WithContext(ctx).Where("id = ?", courseID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) GetByIDAndUserID(ctx context.Context, tx *gorm.DB, courseID, userID uint) (*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var c types.Course
	err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", courseID, userID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Course
	if len(courseIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", courseIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByUserID returns the user's courses, most recently updated first.
func (r *courseRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Course
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) UpdateFields(ctx context.Context, tx *gorm.DB, courseID uint, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Course{}).
		Where("id = ?", courseID).
		Updates(updates).Error
}

func (r *courseRepo) DeleteByID(ctx context.Context, tx *gorm.DB, courseID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", courseID).
		Delete(&types.Course{}).Error
}
