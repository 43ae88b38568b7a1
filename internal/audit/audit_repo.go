package audit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *AuditLog) error
	FindRecent(ctx context.Context, limit int) ([]AuditLog, error)
	DeleteByEntryUser(ctx context.Context, userID string) error
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

func (r *repository) Create(ctx context.Context, a *AuditLog) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]AuditLog, error) {
	var logs []AuditLog
	err := r.db.WithContext(ctx).
		Preload("EditedByUser").
		Order("edited_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// DeleteByEntryUser removes the audit rows attached to a user's entries.
// Used only by the cascading employee delete.
func (r *repository) DeleteByEntryUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("time_entry_id IN (?)",
			r.db.Table("time_entries").Select("id").Where("user_id = ?", userID),
		).
		Delete(&AuditLog{}).Error
}
