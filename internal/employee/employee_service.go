package employee

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go-timeclock/internal/audit"
	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/export"
	"go-timeclock/internal/schedule"
	"go-timeclock/internal/shared/contextutil"
	"go-timeclock/internal/timeentry"
	"go-timeclock/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PINs are validated for format only. Uniqueness is not enforced; the
// clock pad resolves a shared PIN to the first active match.
var pinPattern = regexp.MustCompile(`^\d{4,8}$`)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// ToggleActive flips the soft-disable flag. Refused for ADMIN so the
	// last admin can't lock themselves out.
	ToggleActive(ctx context.Context, id string) (EmployeeResponse, error)
	UpdatePIN(ctx context.Context, id string, pin string) error
	// Delete removes the user and everything hanging off them: audit rows
	// of their entries, the entries, their schedule, then the user row.
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *gorm.DB
	users     user.Repository
	entries   timeentry.Repository
	audits    audit.Repository
	schedules schedule.Repository
	exporter  export.Exporter
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	users user.Repository,
	entries timeentry.Repository,
	audits audit.Repository,
	schedules schedule.Repository,
	exporter export.Exporter,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		users:     users,
		entries:   entries,
		audits:    audits,
		schedules: schedules,
		exporter:  exporter,
		logger:    l,
	}
}

func ValidatePIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, err
	}

	res := make([]EmployeeResponse, len(users))
	for i, u := range users {
		resp := mapToResponse(u)
		if _, err := s.entries.FindOpenByUser(ctx, u.ID.String()); err == nil {
			resp.OnShift = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		res[i] = resp
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	pin := strings.TrimSpace(req.PinCode)
	if name == "" {
		return EmployeeResponse{}, employeeerrors.ErrNameRequired
	}
	if !ValidatePIN(pin) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidPIN
	}
	if req.HourlyPay != nil && *req.HourlyPay < 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHourlyPay
	}

	u := &user.User{
		ID:        uuid.New(),
		Name:      name,
		Role:      user.RoleEmployee,
		PinCode:   pin,
		IsActive:  true,
		HourlyPay: req.HourlyPay,
	}

	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.exporter.Trigger()
	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", u.ID.String()),
	)
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return EmployeeResponse{}, employeeerrors.ErrNameRequired
	}
	if req.HourlyPay != nil && *req.HourlyPay < 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHourlyPay
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	u.Name = name
	u.HourlyPay = req.HourlyPay

	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.exporter.Trigger()
	s.logger.Info("employee updated", zap.String("employee_id", id))
	return mapToResponse(*u), nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (EmployeeResponse, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if u.Role == user.RoleAdmin {
		return EmployeeResponse{}, employeeerrors.ErrCannotDisableAdmin
	}

	u.IsActive = !u.IsActive

	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Error("toggle active failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.exporter.Trigger()
	s.logger.Info("employee active toggled",
		zap.String("employee_id", id),
		zap.Bool("is_active", u.IsActive),
	)
	return mapToResponse(*u), nil
}

func (s *service) UpdatePIN(ctx context.Context, id string, pin string) error {
	pin = strings.TrimSpace(pin)
	if !ValidatePIN(pin) {
		return employeeerrors.ErrInvalidPIN
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if u.Role == user.RoleAdmin {
		return employeeerrors.ErrCannotChangeAdminPIN
	}

	u.PinCode = pin

	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Error("update pin failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.exporter.Trigger()
	s.logger.Info("employee pin updated", zap.String("employee_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.audits.WithTx(tx).DeleteByEntryUser(ctx, id); err != nil {
			return err
		}
		if err := s.entries.WithTx(tx).DeleteByUser(ctx, id); err != nil {
			return err
		}
		if err := s.schedules.WithTx(tx).DeleteByUser(ctx, id); err != nil {
			return err
		}
		return s.users.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("delete employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return err
	}

	s.exporter.Trigger()
	s.logger.Info("employee deleted",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

func mapToResponse(u user.User) EmployeeResponse {
	return EmployeeResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Role:      u.Role,
		PinCode:   u.PinCode,
		IsActive:  u.IsActive,
		HourlyPay: u.HourlyPay,
	}
}
