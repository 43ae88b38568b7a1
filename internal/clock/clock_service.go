package clock

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	clockerrors "go-timeclock/internal/clock/errors"
	"go-timeclock/internal/events"
	"go-timeclock/internal/export"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/shared/contextutil"
	"go-timeclock/internal/timeentry"
	"go-timeclock/internal/user"
	usererrors "go-timeclock/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// All clock instants are taken and stored in UTC. Converting to the
// viewer's zone is the caller's presentation concern, never persisted.

//go:generate mockgen -source=clock_service.go -destination=mock/clock_service_mock.go -package=mock
type Service interface {
	Status(ctx context.Context, req PunchRequest) (StatusResponse, error)
	ClockIn(ctx context.Context, req PunchRequest) (PunchResponse, error)
	ClockOut(ctx context.Context, req PunchRequest) (PunchResponse, error)
}

type service struct {
	db       *gorm.DB
	users    user.Repository
	entries  timeentry.Repository
	outbox   kafka.OutboxRepository
	exporter export.Exporter
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	users user.Repository,
	entries timeentry.Repository,
	outbox kafka.OutboxRepository,
	exporter export.Exporter,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("clock.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clock.service")
	}
	return &service{
		db:       db,
		users:    users,
		entries:  entries,
		outbox:   outbox,
		exporter: exporter,
		logger:   l,
	}
}

// resolve maps the punch request to an active user. PIN-only requests take
// the first user carrying the PIN; selector requests additionally pin the
// match to the chosen user id.
func (s *service) resolve(ctx context.Context, req PunchRequest) (*user.User, error) {
	if req.UserID != "" {
		u, err := s.users.FindByID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, usererrors.ErrUserNotFound
			}
			return nil, err
		}
		if !u.IsActive {
			return nil, usererrors.ErrUserDisabled
		}
		if u.PinCode != req.PinCode {
			return nil, usererrors.ErrInvalidCredential
		}
		return u, nil
	}

	u, err := s.users.FindFirstByPIN(ctx, req.PinCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrInvalidCredential
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, usererrors.ErrUserDisabled
	}
	return u, nil
}

func (s *service) Status(ctx context.Context, req PunchRequest) (StatusResponse, error) {
	u, err := s.resolve(ctx, req)
	if err != nil {
		return StatusResponse{}, err
	}

	resp := StatusResponse{
		User: UserSummary{ID: u.ID.String(), Name: u.Name, Role: u.Role},
	}

	open, err := s.entries.FindOpenByUser(ctx, u.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return StatusResponse{}, err
	}

	resp.ActiveEntry = &OpenEntry{
		ID:          open.ID.String(),
		ClockInTime: open.ClockInTime.Format(time.RFC3339),
	}
	return resp, nil
}

func (s *service) ClockIn(ctx context.Context, req PunchRequest) (PunchResponse, error) {
	u, err := s.resolve(ctx, req)
	if err != nil {
		return PunchResponse{}, err
	}

	l := contextutil.GetLogger(ctx, s.logger)
	meta := contextutil.ExtractMetadata(ctx)
	now := time.Now().UTC()
	entry := &timeentry.TimeEntry{
		ID:          uuid.New(),
		UserID:      u.ID,
		ClockInTime: now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.entries.WithTx(tx)

		if _, err := qtx.FindOpenByUser(ctx, u.ID.String()); err == nil {
			return clockerrors.ErrShiftAlreadyOpen
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := qtx.Create(ctx, entry); err != nil {
			return mapCreateError(err)
		}

		return s.enqueuePunch(ctx, tx, events.PunchIn, u.ID.String(), entry.ID.String(), meta.RequestID, now)
	})
	if err != nil {
		l.Warn("clock in failed",
			zap.String("user_id", u.ID.String()),
			zap.Error(err),
		)
		return PunchResponse{}, err
	}

	s.exporter.Trigger()
	l.Info("clock in",
		zap.String("user_id", u.ID.String()),
		zap.String("entry_id", entry.ID.String()),
	)

	return PunchResponse{
		EntryID:     entry.ID.String(),
		ClockInTime: entry.ClockInTime.Format(time.RFC3339),
	}, nil
}

func (s *service) ClockOut(ctx context.Context, req PunchRequest) (PunchResponse, error) {
	u, err := s.resolve(ctx, req)
	if err != nil {
		return PunchResponse{}, err
	}

	l := contextutil.GetLogger(ctx, s.logger)
	meta := contextutil.ExtractMetadata(ctx)
	var entry *timeentry.TimeEntry

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.entries.WithTx(tx)

		open, err := qtx.FindOpenByUser(ctx, u.ID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return clockerrors.ErrNoOpenShift
			}
			return err
		}

		now := time.Now().UTC()
		total := timeentry.RoundHours(now.Sub(open.ClockInTime))
		open.ClockOutTime = &now
		open.TotalHours = &total

		if err := qtx.Update(ctx, open); err != nil {
			return err
		}
		entry = open

		return s.enqueuePunch(ctx, tx, events.PunchOut, u.ID.String(), open.ID.String(), meta.RequestID, now)
	})
	if err != nil {
		l.Warn("clock out failed",
			zap.String("user_id", u.ID.String()),
			zap.Error(err),
		)
		return PunchResponse{}, err
	}

	s.exporter.Trigger()
	l.Info("clock out",
		zap.String("user_id", u.ID.String()),
		zap.String("entry_id", entry.ID.String()),
		zap.Float64("total_hours", *entry.TotalHours),
	)

	out := entry.ClockOutTime.Format(time.RFC3339)
	return PunchResponse{
		EntryID:      entry.ID.String(),
		ClockInTime:  entry.ClockInTime.Format(time.RFC3339),
		ClockOutTime: &out,
		TotalHours:   entry.TotalHours,
	}, nil
}

func (s *service) enqueuePunch(ctx context.Context, tx *gorm.DB, punch, userID, entryID, rid string, at time.Time) error {
	if s.outbox == nil {
		return nil
	}

	event := events.ClockPunchedEvent{
		EventType:  "clock_punched",
		RequestID:  rid,
		Punch:      punch,
		UserID:     userID,
		EntryID:    entryID,
		OccurredAt: at,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "time_entry",
		AggregateID:   entryID,
		EventType:     event.EventType,
		Topic:         events.ClockPunchedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
