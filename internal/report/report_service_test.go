package report

import (
	"context"
	"testing"
	"time"

	"go-timeclock/internal/schedule"
	"go-timeclock/internal/timeentry"
	"go-timeclock/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	all []user.User
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) user.Repository             { return f }
func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindFirstByPIN(ctx context.Context, pin string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindAdminByPIN(ctx context.Context, pin string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindAll(ctx context.Context) ([]user.User, error) { return f.all, nil }
func (f *fakeUserRepo) FindActiveEmployees(ctx context.Context) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }

type fakeEntryRepo struct {
	closed    []timeentry.TimeEntry
	gotStart  time.Time
	gotEnd    time.Time
}

func (f *fakeEntryRepo) WithTx(tx *gorm.DB) timeentry.Repository                  { return f }
func (f *fakeEntryRepo) Create(ctx context.Context, e *timeentry.TimeEntry) error { return nil }
func (f *fakeEntryRepo) FindByID(ctx context.Context, id string) (*timeentry.TimeEntry, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEntryRepo) FindOpenByUser(ctx context.Context, userID string) (*timeentry.TimeEntry, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEntryRepo) FindRecent(ctx context.Context, limit int) ([]timeentry.TimeEntry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) FindClosedInRange(ctx context.Context, start, end time.Time) ([]timeentry.TimeEntry, error) {
	f.gotStart, f.gotEnd = start, end
	return f.closed, nil
}
func (f *fakeEntryRepo) Update(ctx context.Context, e *timeentry.TimeEntry) error { return nil }
func (f *fakeEntryRepo) DeleteByUser(ctx context.Context, userID string) error    { return nil }

type fakeScheduleRepo struct {
	rows []schedule.Schedule
}

func (f *fakeScheduleRepo) WithTx(tx *gorm.DB) schedule.Repository { return f }
func (f *fakeScheduleRepo) FindByUsers(ctx context.Context, userIDs []string) ([]schedule.Schedule, error) {
	return f.rows, nil
}
func (f *fakeScheduleRepo) Upsert(ctx context.Context, userID uuid.UUID, dayOfWeek int, hours float64) error {
	return nil
}
func (f *fakeScheduleRepo) DeleteByUser(ctx context.Context, userID string) error { return nil }

type fakeSettings struct {
	weekStartDay int
	timezone     string
}

func (f *fakeSettings) WeekStartDay(ctx context.Context) int              { return f.weekStartDay }
func (f *fakeSettings) SetWeekStartDay(ctx context.Context, day int) error { return nil }
func (f *fakeSettings) Timezone(ctx context.Context) string               { return f.timezone }
func (f *fakeSettings) SetTimezone(ctx context.Context, tz string) error  { return nil }
func (f *fakeSettings) ReportTemplate(ctx context.Context) (string, string) {
	return "", ""
}
func (f *fakeSettings) SetReportTemplate(ctx context.Context, recipient, body string) error {
	return nil
}

func closedEntry(userID uuid.UUID, in time.Time, hours float64) timeentry.TimeEntry {
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	return timeentry.TimeEntry{
		ID:           uuid.New(),
		UserID:       userID,
		ClockInTime:  in,
		ClockOutTime: &out,
		TotalHours:   &hours,
	}
}

func fixedClock(svc Service, now time.Time) {
	svc.(*service).now = func() time.Time { return now }
}

func TestService_Weekly_MondayStart(t *testing.T) {
	// Wednesday inside the week of Mon 2026-03-02
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	pay := 20.0
	jane := user.User{ID: uuid.New(), Name: "Jane", HourlyPay: &pay}

	entries := &fakeEntryRepo{
		closed: []timeentry.TimeEntry{
			closedEntry(jane.ID, time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), 3),  // Tue
			closedEntry(jane.ID, time.Date(2026, 3, 5, 13, 0, 0, 0, time.UTC), 2), // Thu
		},
	}
	schedules := &fakeScheduleRepo{
		rows: []schedule.Schedule{
			{UserID: jane.ID, DayOfWeek: 1, Hours: 8}, // Monday
			{UserID: jane.ID, DayOfWeek: 2, Hours: 4}, // Tuesday
		},
	}

	svc := NewService(&fakeUserRepo{all: []user.User{jane}}, entries, schedules, &fakeSettings{weekStartDay: 1})
	fixedClock(svc, now)

	res, err := svc.Weekly(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), res.WeekStart)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), res.WeekEnd)
	assert.Equal(t, res.WeekStart, entries.gotStart)
	assert.Equal(t, res.WeekEnd, entries.gotEnd)

	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.Equal(t, [7]float64{0, 3, 0, 2, 0, 0, 0}, row.ActualByDay)
	// schedule grid rotates so slot 0 is Monday
	assert.Equal(t, [7]float64{8, 4, 0, 0, 0, 0, 0}, row.ScheduledByDay)
	assert.Equal(t, 5.0, row.TotalHours)
	assert.Equal(t, 12.0, row.ScheduledTotal)
	require.NotNil(t, row.EstimatedPay)
	assert.Equal(t, 100.0, *row.EstimatedPay)
}

func TestService_Weekly_TimezoneBucketing(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	jane := user.User{ID: uuid.New(), Name: "Jane"}

	// Tue 02:00 UTC is still Monday evening in Chicago
	entries := &fakeEntryRepo{
		closed: []timeentry.TimeEntry{
			closedEntry(jane.ID, time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC), 2),
		},
	}

	svc := NewService(&fakeUserRepo{all: []user.User{jane}}, entries, &fakeScheduleRepo{},
		&fakeSettings{weekStartDay: 1, timezone: "America/Chicago"})
	fixedClock(svc, now)

	res, err := svc.Weekly(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, [7]float64{2, 0, 0, 0, 0, 0, 0}, res.Rows[0].ActualByDay)
}

func TestService_Weekly_RowSelectionAndOrder(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	zed := user.User{ID: uuid.New(), Name: "Zed"}
	amy := user.User{ID: uuid.New(), Name: "amy"}
	ghost := user.User{ID: uuid.New(), Name: "Ghost"}
	idle := user.User{ID: uuid.New(), Name: "Idle"}

	entries := &fakeEntryRepo{
		closed: []timeentry.TimeEntry{
			closedEntry(zed.ID, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 1),
		},
	}
	schedules := &fakeScheduleRepo{
		rows: []schedule.Schedule{
			{UserID: amy.ID, DayOfWeek: 5, Hours: 6},
			// an all-zero grid counts as unscheduled
			{UserID: idle.ID, DayOfWeek: 1, Hours: 0},
			{UserID: idle.ID, DayOfWeek: 2, Hours: 0},
		},
	}

	svc := NewService(&fakeUserRepo{all: []user.User{zed, amy, ghost, idle}}, entries, schedules,
		&fakeSettings{weekStartDay: 0})
	fixedClock(svc, now)

	res, err := svc.Weekly(context.Background())
	require.NoError(t, err)

	// ghost has neither hours nor schedule and idle carries only zero-hour
	// rows; both are dropped. Case-insensitive name order puts amy first.
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "amy", res.Rows[0].Name)
	assert.Equal(t, "Zed", res.Rows[1].Name)
	assert.Nil(t, res.Rows[1].EstimatedPay)
}

func TestService_ExportXLSX(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	jane := user.User{ID: uuid.New(), Name: "Jane"}

	entries := &fakeEntryRepo{
		closed: []timeentry.TimeEntry{
			closedEntry(jane.ID, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 8),
		},
	}
	svc := NewService(&fakeUserRepo{all: []user.User{jane}}, entries, &fakeScheduleRepo{},
		&fakeSettings{})
	fixedClock(svc, now)

	data, err := svc.ExportXLSX(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// xlsx is a zip container
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
