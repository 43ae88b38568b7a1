package schedule

import (
	"context"
	"math"

	"go-timeclock/internal/export"
	"go-timeclock/internal/shared/contextutil"
	"go-timeclock/internal/user"
	usererrors "go-timeclock/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	// GetGrid returns one row per active employee, sorted by name.
	GetGrid(ctx context.Context) ([]EmployeeScheduleRow, error)
	// SetSchedules upserts the whole batch in one transaction. Items with
	// an out-of-range day are skipped, not rejected; bad hours collapse
	// to zero.
	SetSchedules(ctx context.Context, req SetSchedulesRequest) error
}

type service struct {
	db        *gorm.DB
	users     user.Repository
	schedules Repository
	exporter  export.Exporter
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	users user.Repository,
	schedules Repository,
	exporter export.Exporter,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{
		db:        db,
		users:     users,
		schedules: schedules,
		exporter:  exporter,
		logger:    l,
	}
}

func (s *service) GetGrid(ctx context.Context) ([]EmployeeScheduleRow, error) {
	employees, err := s.users.FindActiveEmployees(ctx)
	if err != nil {
		s.logger.Error("list active employees failed", zap.Error(err))
		return nil, err
	}
	if len(employees) == 0 {
		return []EmployeeScheduleRow{}, nil
	}

	ids := make([]string, len(employees))
	for i, e := range employees {
		ids[i] = e.ID.String()
	}

	rows, err := s.schedules.FindByUsers(ctx, ids)
	if err != nil {
		s.logger.Error("load schedules failed", zap.Error(err))
		return nil, err
	}

	byUser := make(map[string][7]float64, len(employees))
	for _, row := range rows {
		if row.DayOfWeek < 0 || row.DayOfWeek > 6 {
			continue
		}
		grid := byUser[row.UserID.String()]
		grid[row.DayOfWeek] = row.Hours
		byUser[row.UserID.String()] = grid
	}

	res := make([]EmployeeScheduleRow, len(employees))
	for i, e := range employees {
		res[i] = EmployeeScheduleRow{
			UserID:   e.ID.String(),
			Name:     e.Name,
			ByDay:    byUser[e.ID.String()],
			IsActive: e.IsActive,
		}
	}
	return res, nil
}

func (s *service) SetSchedules(ctx context.Context, req SetSchedulesRequest) error {
	rid := contextutil.GetRequestID(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.schedules.WithTx(tx)
		for _, item := range req.Items {
			if item.DayOfWeek < 0 || item.DayOfWeek > 6 {
				s.logger.Debug("skipping schedule item with invalid day",
					zap.String("user_id", item.UserID),
					zap.Int("day_of_week", item.DayOfWeek),
				)
				continue
			}

			uid, err := uuid.Parse(item.UserID)
			if err != nil {
				return usererrors.ErrInvalidUserID
			}

			hours := item.Hours
			if math.IsNaN(hours) || hours < 0 {
				hours = 0
			}

			if err := repo.Upsert(ctx, uid, item.DayOfWeek, hours); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("set schedules failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.exporter.Trigger()
	s.logger.Info("schedules updated",
		zap.String("request_id", rid),
		zap.Int("items", len(req.Items)),
	)
	return nil
}
