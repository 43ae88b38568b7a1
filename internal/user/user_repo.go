package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	// FindFirstByPIN returns the oldest user carrying the PIN, active or not.
	// Shared PINs are allowed, so "first match" is part of the contract.
	FindFirstByPIN(ctx context.Context, pin string) (*User, error)
	FindAdminByPIN(ctx context.Context, pin string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindActiveEmployees(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindFirstByPIN(ctx context.Context, pin string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("pin_code = ?", pin).
		Order("created_at ASC").
		First(&u).Error
	return &u, err
}

func (r *repository) FindAdminByPIN(ctx context.Context, pin string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("pin_code = ?", pin).
		Where("role = ?", RoleAdmin).
		Where("is_active = ?", true).
		First(&u).Error
	return &u, err
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Order("role ASC, name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindActiveEmployees(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("role <> ?", RoleAdmin).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}
