package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go-timeclock/internal/schedule"
	"go-timeclock/internal/setting"
	"go-timeclock/internal/timeentry"
	"go-timeclock/internal/user"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	// Weekly aggregates closed shifts of the current week against the
	// schedule baseline. Concurrent callers share one computation.
	Weekly(ctx context.Context) (WeeklyReportResponse, error)
	// ExportXLSX renders the same rows as a spreadsheet.
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type service struct {
	users     user.Repository
	entries   timeentry.Repository
	schedules schedule.Repository
	settings  setting.Service
	group     singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	users user.Repository,
	entries timeentry.Repository,
	schedules schedule.Repository,
	settings setting.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		users:     users,
		entries:   entries,
		schedules: schedules,
		settings:  settings,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Weekly(ctx context.Context) (WeeklyReportResponse, error) {
	v, err, _ := s.group.Do("weekly", func() (interface{}, error) {
		return s.buildWeekly(ctx)
	})
	if err != nil {
		return WeeklyReportResponse{}, err
	}
	return v.(WeeklyReportResponse), nil
}

func (s *service) buildWeekly(ctx context.Context) (WeeklyReportResponse, error) {
	weekStartDay := s.settings.WeekStartDay(ctx)
	tzName := s.settings.Timezone(ctx)

	loc := time.Local
	if tzName != "" {
		// Validated on write; a stale bad value falls back to server time.
		if parsed, err := time.LoadLocation(tzName); err == nil {
			loc = parsed
		} else {
			s.logger.Warn("stored timezone is invalid", zap.String("timezone", tzName))
		}
	}

	start, end := WeekBoundsUTC(s.now(), weekStartDay)

	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return WeeklyReportResponse{}, err
	}

	entries, err := s.entries.FindClosedInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("load week entries failed", zap.Error(err))
		return WeeklyReportResponse{}, err
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID.String()
	}
	scheduleRows, err := s.schedules.FindByUsers(ctx, ids)
	if err != nil {
		s.logger.Error("load schedules failed", zap.Error(err))
		return WeeklyReportResponse{}, err
	}

	actual := make(map[string][7]float64)
	for _, e := range entries {
		hours := 0.0
		if e.TotalHours != nil {
			hours = *e.TotalHours
		} else if e.ClockOutTime != nil {
			hours = timeentry.RoundHours(e.ClockOutTime.Sub(e.ClockInTime))
		}
		offset := DayOffset(e.ClockInTime, loc, weekStartDay)
		byDay := actual[e.UserID.String()]
		byDay[offset] += hours
		actual[e.UserID.String()] = byDay
	}

	scheduleGrid := make(map[string][7]float64)
	for _, row := range scheduleRows {
		// Zero-hour rows mean "not scheduled": a user whose grid is all
		// zeros must not surface in the report on schedule alone.
		if row.DayOfWeek < 0 || row.DayOfWeek > 6 || row.Hours <= 0 {
			continue
		}
		grid := scheduleGrid[row.UserID.String()]
		grid[row.DayOfWeek] = row.Hours
		scheduleGrid[row.UserID.String()] = grid
	}

	rows := make([]ReportRow, 0, len(users))
	for _, u := range users {
		id := u.ID.String()
		byDay, hasActual := actual[id]
		grid, hasSchedule := scheduleGrid[id]
		if !hasActual && !hasSchedule {
			continue
		}

		row := ReportRow{UserID: id, Name: u.Name}
		for i := 0; i < 7; i++ {
			row.ActualByDay[i] = round2(byDay[i])
			// Schedule rows are stored by calendar weekday; rotate them
			// into week-start-relative slots.
			row.ScheduledByDay[i] = grid[(weekStartDay+i)%7]
			row.TotalHours += byDay[i]
			row.ScheduledTotal += row.ScheduledByDay[i]
		}
		row.TotalHours = round2(row.TotalHours)
		row.ScheduledTotal = round2(row.ScheduledTotal)

		if u.HourlyPay != nil {
			pay := round2(row.TotalHours * *u.HourlyPay)
			row.EstimatedPay = &pay
		}
		rows = append(rows, row)
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	sort.Slice(rows, func(i, j int) bool {
		return coll.CompareString(rows[i].Name, rows[j].Name) < 0
	})

	return WeeklyReportResponse{
		WeekStart:    start,
		WeekEnd:      end,
		WeekStartDay: weekStartDay,
		Timezone:     tzName,
		Rows:         rows,
	}, nil
}

func (s *service) ExportXLSX(ctx context.Context) ([]byte, error) {
	report, err := s.Weekly(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Weekly Report"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []interface{}{"Employee"}
	for i := 0; i < 7; i++ {
		headers = append(headers, dayNames[(report.WeekStartDay+i)%7])
	}
	headers = append(headers, "Total", "Scheduled", "Est. Pay")
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, row := range report.Rows {
		cells := []interface{}{row.Name}
		for d := 0; d < 7; d++ {
			cells = append(cells, row.ActualByDay[d])
		}
		cells = append(cells, row.TotalHours, row.ScheduledTotal)
		if row.EstimatedPay != nil {
			cells = append(cells, *row.EstimatedPay)
		} else {
			cells = append(cells, "")
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
