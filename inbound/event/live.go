package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"spiriverse/common"
	"spiriverse/common/constant"
	"spiriverse/common/otel"
	"spiriverse/model"
	"spiriverse/outbound/sqlgen"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nats-io/nats.go/jetstream"
)

type LiveEvent struct {
	Querier   *sqlgen.Queries
	Publisher jetstream.Publisher

	Timeout time.Duration
}

// AdvanceQueueHandler promotes the oldest waiting entry after a reading
// completes. The promotion is a conditional single-row UPDATE, so replays and
// concurrent manual promotions collapse into a no-op.
func (in LiveEvent) AdvanceQueueHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.AdvanceQueueEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "advance queue event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "LiveEvent.AdvanceQueueHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.InfoContext(ctx, "advance queue event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	promoted, err := in.Querier.PromoteNextQueueEntry(ctx, req.SessionID)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to promote next entry", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	if err == pgx.ErrNoRows {
		slog.InfoContext(ctx, "no promotable entry", traceIdAttr)
		return nil
	}

	session, err := in.Querier.FindLiveSessionById(ctx, req.SessionID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to find session", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	emailPayload := model.SendEmailEventMessage{
		To:      promoted.CustomerEmail,
		Subject: "Your Reading Is Starting",
		Body:    fmt.Sprintf(constant.EmailReadingStartedTemplate, promoted.CustomerName, session.Title),
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, emailPayload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish reading started email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	slog.InfoContext(ctx, "advance queue event success", traceIdAttr, slog.Int64("entry_id", promoted.ID))

	return nil
}
