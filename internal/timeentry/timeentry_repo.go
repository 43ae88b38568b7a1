package timeentry

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeentry_repo.go -destination=mock/timeentry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *TimeEntry) error
	FindByID(ctx context.Context, id string) (*TimeEntry, error)
	// FindOpenByUser returns the newest open entry for the user. Newest
	// first so that, should a data anomaly ever produce several open
	// entries, clock-out always closes the most recent one.
	FindOpenByUser(ctx context.Context, userID string) (*TimeEntry, error)
	FindRecent(ctx context.Context, limit int) ([]TimeEntry, error)
	FindClosedInRange(ctx context.Context, start, end time.Time) ([]TimeEntry, error)
	Update(ctx context.Context, e *TimeEntry) error
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

func (r *repository) Create(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindOpenByUser(ctx context.Context, userID string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("clock_out_time IS NULL").
		Order("clock_in_time DESC").
		First(&e).Error
	return &e, err
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]TimeEntry, error) {
	var entries []TimeEntry
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("clock_in_time DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindClosedInRange(ctx context.Context, start, end time.Time) ([]TimeEntry, error) {
	var entries []TimeEntry
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("clock_in_time >= ? AND clock_in_time < ?", start, end).
		Where("clock_out_time IS NOT NULL").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Update(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Delete(&TimeEntry{}, "user_id = ?", userID).Error
}
