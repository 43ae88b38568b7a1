package timesheet

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-timeclock/internal/audit"
	"go-timeclock/internal/events"
	"go-timeclock/internal/export"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/shared/contextutil"
	"go-timeclock/internal/timeentry"
	timesheeterrors "go-timeclock/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const listLimit = 500

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	ListEntries(ctx context.Context) ([]EntryResponse, error)
	ListAudits(ctx context.Context) ([]AuditResponse, error)
	// EditEntry snapshots the entry's current clock times into a new audit
	// row, then overwrites them, in one transaction. A reader can never
	// observe the overwrite without its audit row.
	EditEntry(ctx context.Context, entryID, editorID string, req EditEntryRequest) (EntryResponse, error)
}

type service struct {
	db       *gorm.DB
	entries  timeentry.Repository
	audits   audit.Repository
	outbox   kafka.OutboxRepository
	exporter export.Exporter
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	entries timeentry.Repository,
	audits audit.Repository,
	outbox kafka.OutboxRepository,
	exporter export.Exporter,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{
		db:       db,
		entries:  entries,
		audits:   audits,
		outbox:   outbox,
		exporter: exporter,
		logger:   l,
	}
}

func (s *service) ListEntries(ctx context.Context) ([]EntryResponse, error) {
	rows, err := s.entries.FindRecent(ctx, listLimit)
	if err != nil {
		s.logger.Error("list entries failed", zap.Error(err))
		return nil, err
	}

	res := make([]EntryResponse, len(rows))
	for i, e := range rows {
		res[i] = mapEntry(e)
	}
	return res, nil
}

func (s *service) ListAudits(ctx context.Context) ([]AuditResponse, error) {
	rows, err := s.audits.FindRecent(ctx, listLimit)
	if err != nil {
		s.logger.Error("list audits failed", zap.Error(err))
		return nil, err
	}

	res := make([]AuditResponse, len(rows))
	for i, a := range rows {
		res[i] = mapAudit(a)
	}
	return res, nil
}

func (s *service) EditEntry(ctx context.Context, entryID, editorID string, req EditEntryRequest) (EntryResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	meta := contextutil.ExtractMetadata(ctx)

	newClockIn, err := time.Parse(time.RFC3339, req.ClockInTime)
	if err != nil {
		return EntryResponse{}, timesheeterrors.ErrInvalidTimestamp
	}
	var newClockOut *time.Time
	if req.ClockOutTime != nil {
		t, err := time.Parse(time.RFC3339, *req.ClockOutTime)
		if err != nil {
			return EntryResponse{}, timesheeterrors.ErrInvalidTimestamp
		}
		utc := t.UTC()
		newClockOut = &utc
	}
	newClockIn = newClockIn.UTC()

	editorUUID, err := uuid.Parse(editorID)
	if err != nil {
		return EntryResponse{}, timesheeterrors.ErrEntryNotFound
	}

	var updated timeentry.TimeEntry
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qEntries := s.entries.WithTx(tx)
		qAudits := s.audits.WithTx(tx)

		entry, err := qEntries.FindByID(ctx, entryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return timesheeterrors.ErrEntryNotFound
			}
			return err
		}

		editedAt := time.Now().UTC()
		if err := qAudits.Create(ctx, &audit.AuditLog{
			ID:               uuid.New(),
			TimeEntryID:      entry.ID,
			EditedByUserID:   editorUUID,
			EditedAt:         editedAt,
			PreviousClockIn:  entry.ClockInTime,
			PreviousClockOut: entry.ClockOutTime,
		}); err != nil {
			return err
		}

		entry.ClockInTime = newClockIn
		entry.ClockOutTime = newClockOut
		// Deliberately no clock_out > clock_in guard: a backwards edit
		// yields negative total_hours, recoverable through the audit row.
		if newClockOut == nil {
			entry.TotalHours = nil
		} else {
			total := timeentry.RoundHours(newClockOut.Sub(newClockIn))
			entry.TotalHours = &total
		}
		entry.IsEdited = true

		if err := qEntries.Update(ctx, entry); err != nil {
			return err
		}
		updated = *entry

		return s.enqueueEdit(ctx, tx, entry.ID.String(), editorID, meta.RequestID, editedAt)
	})
	if err != nil {
		l.Warn("edit entry failed",
			zap.String("entry_id", entryID),
			zap.Error(err),
		)
		return EntryResponse{}, err
	}

	s.exporter.Trigger()
	l.Info("entry edited",
		zap.String("entry_id", entryID),
		zap.String("edited_by", editorID),
	)

	return mapEntry(updated), nil
}

func (s *service) enqueueEdit(ctx context.Context, tx *gorm.DB, entryID, editorID, rid string, at time.Time) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EntryEditedEvent{
		EventType:      "entry_edited",
		RequestID:      rid,
		EntryID:        entryID,
		EditedByUserID: editorID,
		OccurredAt:     at,
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
		Topic:         events.EntryEditedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapEntry(e timeentry.TimeEntry) EntryResponse {
	resp := EntryResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		ClockInTime: e.ClockInTime.Format(time.RFC3339),
		TotalHours:  e.TotalHours,
		IsEdited:    e.IsEdited,
	}
	if e.User != nil {
		resp.UserName = e.User.Name
	}
	if e.ClockOutTime != nil {
		v := e.ClockOutTime.Format(time.RFC3339)
		resp.ClockOutTime = &v
	}
	return resp
}

func mapAudit(a audit.AuditLog) AuditResponse {
	resp := AuditResponse{
		ID:              a.ID.String(),
		TimeEntryID:     a.TimeEntryID.String(),
		EditedByUserID:  a.EditedByUserID.String(),
		EditedAt:        a.EditedAt.Format(time.RFC3339),
		PreviousClockIn: a.PreviousClockIn.Format(time.RFC3339),
	}
	if a.EditedByUser != nil {
		resp.EditedByName = a.EditedByUser.Name
	}
	if a.PreviousClockOut != nil {
		v := a.PreviousClockOut.Format(time.RFC3339)
		resp.PreviousClockOut = &v
	}
	return resp
}
