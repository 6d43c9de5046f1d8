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
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/text/message"
)

type ExpoEvent struct {
	Publisher            jetstream.Publisher
	UsdCurrencyFormatter *message.Printer

	Timeout time.Duration
}

func (in ExpoEvent) SaleRecordedHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.SaleRecordedEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "sale recorded event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "ExpoEvent.SaleRecordedHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.InfoContext(ctx, "sale recorded event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	emailPayload := model.SendEmailEventMessage{
		To:      req.Email,
		Subject: "Purchase Receipt",
		Body:    in.buildSaleReceiptEmailBody(req),
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, emailPayload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish receipt email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	slog.InfoContext(ctx, "sale recorded event success", traceIdAttr, slog.Int64("sale_id", req.SaleID))

	return nil
}

func (in ExpoEvent) buildSaleReceiptEmailBody(req model.SaleRecordedEventMessage) string {
	totalFormatted := in.UsdCurrencyFormatter.Sprintf("$%.2f", float64(req.Amount)/100)
	return fmt.Sprintf(constant.EmailSaleReceiptTemplate, req.Name, req.ItemName, req.Quantity, totalFormatted)
}
