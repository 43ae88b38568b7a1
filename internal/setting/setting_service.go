package setting

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go-timeclock/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const cacheKeyPrefix = "settings:"

func cacheKey(key string) string {
	return cacheKeyPrefix + key
}

var (
	errInvalidDay = apperror.New(
		apperror.CodeInvalidInput,
		"Week start day must be between 0 (Sunday) and 6 (Saturday)",
		400,
	)
	errInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"Timezone must be a valid IANA zone name",
		400,
	)
)

//go:generate mockgen -source=setting_service.go -destination=mock/setting_service_mock.go -package=mock
type Service interface {
	// WeekStartDay defaults to 0 (Sunday). Unreadable or out-of-range
	// stored values also read as 0 so a broken row never breaks the
	// aggregation page.
	WeekStartDay(ctx context.Context) int
	SetWeekStartDay(ctx context.Context, day int) error

	// Timezone returns the configured IANA zone, empty meaning "server
	// default".
	Timezone(ctx context.Context) string
	SetTimezone(ctx context.Context, tz string) error

	ReportTemplate(ctx context.Context) (recipient, body string)
	SetReportTemplate(ctx context.Context, recipient, body string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("setting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) WeekStartDay(ctx context.Context) int {
	raw, ok := s.get(ctx, KeyWeekStartDay)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 6 {
		return 0
	}
	return n
}

func (s *service) SetWeekStartDay(ctx context.Context, day int) error {
	if day < 0 || day > 6 {
		return errInvalidDay
	}
	return s.set(ctx, KeyWeekStartDay, strconv.Itoa(day))
}

func (s *service) Timezone(ctx context.Context) string {
	raw, ok := s.get(ctx, KeyTimezone)
	if !ok {
		return ""
	}
	return raw
}

func (s *service) SetTimezone(ctx context.Context, tz string) error {
	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return errInvalidTimezone
		}
	}
	return s.set(ctx, KeyTimezone, tz)
}

func (s *service) ReportTemplate(ctx context.Context) (string, string) {
	recipient, _ := s.get(ctx, KeyReportRecipient)
	body, _ := s.get(ctx, KeyReportBody)
	return recipient, body
}

func (s *service) SetReportTemplate(ctx context.Context, recipient, body string) error {
	if err := s.set(ctx, KeyReportRecipient, recipient); err != nil {
		return err
	}
	return s.set(ctx, KeyReportBody, body)
}

// get reads through the redis cache. A cache or DB failure degrades to
// "not set" for reads; settings all have safe defaults.
func (s *service) get(ctx context.Context, key string) (string, bool) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey(key)).Result(); err == nil {
			return cached, true
		}
	}

	row, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("read setting failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, cacheKey(key), row.Value, time.Hour).Err(); err != nil {
			s.logger.Warn("cache setting failed", zap.String("key", key), zap.Error(err))
		}
	}
	return row.Value, true
}

func (s *service) set(ctx context.Context, key, value string) error {
	if err := s.repo.Set(ctx, key, value); err != nil {
		s.logger.Error("write setting failed", zap.String("key", key), zap.Error(err))
		return err
	}
	if s.rdb != nil {
		if err := s.rdb.Del(ctx, cacheKey(key)).Err(); err != nil {
			s.logger.Warn("invalidate setting cache failed", zap.String("key", key), zap.Error(err))
		}
	}
	s.logger.Info("setting updated", zap.String("key", key))
	return nil
}
