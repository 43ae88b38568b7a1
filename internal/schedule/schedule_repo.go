package schedule

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByUsers(ctx context.Context, userIDs []string) ([]Schedule, error)
	Upsert(ctx context.Context, userID uuid.UUID, dayOfWeek int, hours float64) error
	DeleteByUser(ctx context.Context, userID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindByUsers(ctx context.Context, userIDs []string) ([]Schedule, error) {
	var rows []Schedule
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Upsert(ctx context.Context, userID uuid.UUID, dayOfWeek int, hours float64) error {
	row := Schedule{
		ID:        uuid.New(),
		UserID:    userID,
		DayOfWeek: dayOfWeek,
		Hours:     hours,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_of_week"}},
			DoUpdates: clause.AssignmentColumns([]string{"hours", "updated_at"}),
		}).
		Create(&row).Error
}

func (r *repository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Delete(&Schedule{}, "user_id = ?", userID).Error
}
