package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type KnowledgePointRepo interface {
	Create(ctx context.Context, tx *gorm.DB, point *types.KnowledgePoint) (*types.KnowledgePoint, error)
	GetByID(ctx context.Context, tx *gorm.DB, pointID uint) (*types.KnowledgePoint, error)
	ListByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.KnowledgePoint, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, pointID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, tx *gorm.DB, pointID uint) error
	DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error
}

type knowledgePointRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewKnowledgePointRepo(db *gorm.DB, baseLog *logger.Logger) KnowledgePointRepo {
	return &knowledgePointRepo{db: db, log: baseLog.With("repo", "KnowledgePointRepo")}
}

func (r *knowledgePointRepo) Create(ctx context.Context, tx *gorm.DB, point *types.KnowledgePoint) (*types.KnowledgePoint, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(point).Error; err != nil {
		return nil, err
	}
	return point, nil
}

func (r *knowledgePointRepo) GetByID(ctx context.Context, tx *gorm.DB, pointID uint) (*types.KnowledgePoint, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var p types.KnowledgePoint
	err := transaction.WithContext(ctx).Where("id = ?", pointID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByCourseID returns the course's points, newest first.
func (r *knowledgePointRepo) ListByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.KnowledgePoint, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.KnowledgePoint
	if err := transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *knowledgePointRepo) UpdateFields(ctx context.Context, tx *gorm.DB, pointID uint, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.KnowledgePoint{}).
		Where("id = ?", pointID).
		Updates(updates).Error
}

func (r *knowledgePointRepo) DeleteByID(ctx context.Context, tx *gorm.DB, pointID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", pointID).
		Delete(&types.KnowledgePoint{}).Error
}

func (r *knowledgePointRepo) DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&types.KnowledgePoint{}).Error
}
