package consumer

import (
	"context"
	"encoding/json"

	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeEntryEdits(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.entry_edit")
	log.Info("entry edit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("entry edit consumer stopped")
				return
			}
			log.Error("fetch entry edit message failed", zap.Error(err))
			continue
		}

		var event events.EntryEditedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode entry edit event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "timesheet.entry_edited",
			Message: "admin edited a time entry",
			Meta: map[string]any{
				"entry_id":          event.EntryID,
				"edited_by_user_id": event.EditedByUserID,
				"request_id":        event.RequestID,
				"occurred_at":       event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit entry edit message failed", zap.Error(err))
			continue
		}

		log.Info("entry edit recorded",
			zap.String("entry_id", event.EntryID),
			zap.String("edited_by_user_id", event.EditedByUserID),
		)
	}
}
