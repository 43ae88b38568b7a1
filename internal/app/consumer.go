package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/events"
	"go-timeclock/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	punchReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.ClockPunchedTopic,
		GroupID:        "go-timeclock-audit",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer punchReader.Close()

	editReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.EntryEditedTopic,
		GroupID:        "go-timeclock-audit",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer editReader.Close()

	auditLogger := bootstrap.NewStdoutAuditLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeClockPunches(ctx, punchReader, auditLogger, logger)
	go consumer.ConsumeEntryEdits(ctx, editReader, auditLogger, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
