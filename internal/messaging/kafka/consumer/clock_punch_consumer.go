package consumer

import (
	"context"
	"encoding/json"

	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeClockPunches mirrors every punch into the audit trail. Malformed
// messages are committed and dropped; there is nothing to retry.
func ConsumeClockPunches(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.clock_punch")
	log.Info("clock punch consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("clock punch consumer stopped")
				return
			}
			log.Error("fetch clock punch message failed", zap.Error(err))
			continue
		}

		var event events.ClockPunchedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode clock punch event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "clock." + event.Punch,
			Message: "employee punched the clock",
			Meta: map[string]any{
				"user_id":     event.UserID,
				"entry_id":    event.EntryID,
				"request_id":  event.RequestID,
				"occurred_at": event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit clock punch message failed", zap.Error(err))
			continue
		}

		log.Info("clock punch recorded",
			zap.String("punch", event.Punch),
			zap.String("user_id", event.UserID),
			zap.String("entry_id", event.EntryID),
		)
	}
}
