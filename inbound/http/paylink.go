package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"spiriverse/common"
	"spiriverse/common/constant"
	"spiriverse/common/errs"
	"spiriverse/common/otel"
	"spiriverse/model"
	"spiriverse/outbound/payment"
	"spiriverse/outbound/sqlgen"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
)

type PaylinkHttp struct {
	Cfg                  *viper.Viper
	Querier              *sqlgen.Queries
	Publisher            jetstream.Publisher
	Gateway              payment.Gateway
	Validate             *validator.Validate
	UsdCurrencyFormatter *message.Printer
}

func RegisterPaylinkHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	querier *sqlgen.Queries,
	publisher jetstream.Publisher,
	gateway payment.Gateway,
	validate *validator.Validate,
	usdCurrencyFormatter *message.Printer,
) *PaylinkHttp {
	in := &PaylinkHttp{
		Cfg:                  cfg,
		Querier:              querier,
		Publisher:            publisher,
		Gateway:              gateway,
		Validate:             validate,
		UsdCurrencyFormatter: usdCurrencyFormatter,
	}

	mux.HandleFunc("POST /api/payment-links", in.create)
	mux.HandleFunc("POST /api/payment-links/{id}/cancel", in.cancel)
	mux.HandleFunc("POST /api/payment-links/{id}/resend", in.resend)
	mux.HandleFunc("POST /api/payment-links/expire", in.expire)
	mux.HandleFunc("GET /api/pay/{code}", in.view)
	mux.HandleFunc("POST /api/pay/{code}", in.pay)

	return in
}

func (in PaylinkHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePaymentLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "PaylinkHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create payment link receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	var totalAmount int64
	for _, item := range req.LineItems {
		totalAmount += item.Amount
	}

	if totalAmount <= 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Total amount must be positive"})
		return
	}

	lineItems, err := json.Marshal(req.LineItems)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var expiresAt pgtype.Timestamp
	if req.ExpiresInHours > 0 {
		expiresAt = pgtype.Timestamp{Time: time.Now().UTC().Add(time.Duration(req.ExpiresInHours) * time.Hour), Valid: true}
	} else if defaultTtl := in.Cfg.GetDuration("payment_link.default_ttl"); defaultTtl > 0 {
		expiresAt = pgtype.Timestamp{Time: time.Now().UTC().Add(defaultTtl), Valid: true}
	}

	shareCode := generateShareCode()
	returnId, err := in.Querier.InsertPaymentLink(ctx, sqlgen.InsertPaymentLinkParams{
		PractitionerID: req.PractitionerId,
		CustomerEmail:  req.CustomerEmail,
		LineItems:      lineItems,
		TotalAmount:    totalAmount,
		ShareCode:      shareCode,
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert payment link", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
		To:      req.CustomerEmail,
		Subject: "Payment Request",
		Body:    in.buildPaymentLinkEmailBody(req.LineItems, totalAmount, shareCode, expiresAt),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish payment link email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "create payment link success", traceIdAttr, slog.Any(constant.LogFieldResponse, returnId))

	writeJSONResponse(w, http.StatusOK, model.CreatePaymentLinkResponse{
		Id:          returnId,
		ShareCode:   shareCode,
		TotalAmount: totalAmount,
	})
}

func (in PaylinkHttp) pay(w http.ResponseWriter, r *http.Request) {
	var req model.PayPaymentLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "PaylinkHttp.pay")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "pay payment link receive request", traceIdAttr)

	link, err := in.Querier.FindPaymentLinkByShareCode(ctx, r.PathValue("code"))
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find payment link", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Link not found"})
		return
	}

	if link.Status != constant.LinkStatusSent {
		writeErrorResponse(w, linkStatusConflict(link.Status))
		return
	}

	// The sweep marks overdue links in bulk, but a link can pass its deadline
	// between sweeps. Reject here regardless of the stored status.
	if link.ExpiresAt.Valid && link.ExpiresAt.Time.Before(time.Now().UTC()) {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Link expired"})
		return
	}

	chargeId, err := in.Gateway.Charge(ctx, req.PaymentToken, link.TotalAmount)
	if err != nil {
		if err == payment.ErrDeclined {
			slog.WarnContext(ctx, "payment charge declined", traceIdAttr)
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusPaymentRequired, Message: "Payment failed"})
			return
		}

		slog.ErrorContext(ctx, "failed to charge payment", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	cmd, err := in.Querier.MarkPaymentLinkPaid(ctx, link.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to mark link paid", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if cmd.RowsAffected() == 0 {
		// A concurrent payer won the conditional update. Give this payer's
		// money back before reporting the conflict.
		slog.WarnContext(ctx, "link no longer payable after charge", traceIdAttr, slog.Int64("link_id", link.ID))
		if refundErr := in.Gateway.Refund(ctx, chargeId); refundErr != nil {
			slog.ErrorContext(ctx, "failed to refund charge", traceIdAttr,
				slog.String("charge_id", chargeId), slog.Any(constant.LogFieldErr, refundErr))
		}

		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Link already paid"})
		return
	}

	slog.InfoContext(ctx, "payment link paid", traceIdAttr, slog.Int64("link_id", link.ID))

	writeJSONResponse(w, http.StatusOK, nil)
}

func (in PaylinkHttp) view(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	link, err := in.Querier.FindPaymentLinkByShareCode(ctx, r.PathValue("code"))
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find payment link", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Link not found"})
		return
	}

	var lineItems []model.PaymentLinkLineItem
	if err := json.Unmarshal(link.LineItems, &lineItems); err != nil {
		slog.ErrorContext(ctx, "failed to decode line items", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	resp := model.PaymentLinkViewResponse{
		Status:      link.Status,
		LineItems:   lineItems,
		TotalAmount: link.TotalAmount,
	}

	if link.ExpiresAt.Valid {
		resp.ExpiresAt = link.ExpiresAt.Time.Format(time.RFC3339)
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in PaylinkHttp) cancel(w http.ResponseWriter, r *http.Request) {
	linkId, err := parsePathId(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "PaylinkHttp.cancel")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "cancel payment link receive request", slog.Int64("link_id", linkId), traceIdAttr)

	link, err := in.Querier.FindPaymentLinkById(ctx, linkId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find payment link", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Link not found"})
		return
	}

	if link.Status == constant.LinkStatusPaid {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Link already paid"})
		return
	}

	cmd, err := in.Querier.CancelPaymentLink(ctx, linkId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel payment link", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Link already paid"})
		return
	}

	slog.InfoContext(ctx, "cancel payment link success", traceIdAttr, slog.Int64("link_id", linkId))

	writeJSONResponse(w, http.StatusOK, nil)
}

func (in PaylinkHttp) resend(w http.ResponseWriter, r *http.Request) {
	linkId, err := parsePathId(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "PaylinkHttp.resend")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "resend payment link receive request", slog.Int64("link_id", linkId), traceIdAttr)

	link, err := in.Querier.FindPaymentLinkById(ctx, linkId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find payment link", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Link not found"})
		return
	}

	if link.Status != constant.LinkStatusSent {
		writeErrorResponse(w, linkStatusConflict(link.Status))
		return
	}

	var lineItems []model.PaymentLinkLineItem
	if err := json.Unmarshal(link.LineItems, &lineItems); err != nil {
		slog.ErrorContext(ctx, "failed to decode line items", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
		To:      link.CustomerEmail,
		Subject: "Payment Request",
		Body:    in.buildPaymentLinkEmailBody(lineItems, link.TotalAmount, link.ShareCode, link.ExpiresAt),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish payment link email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "resend payment link success", traceIdAttr, slog.Int64("link_id", linkId))

	writeJSONResponse(w, http.StatusOK, nil)
}

func (in PaylinkHttp) expire(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "PaylinkHttp.expire")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	expired, err := in.Querier.BulkExpirePaymentLinks(ctx, in.Cfg.GetInt32("payment_link.expire_limit"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to expire payment links", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	for _, link := range expired {
		totalFormatted := in.UsdCurrencyFormatter.Sprintf("$%.2f", float64(link.TotalAmount)/100)
		err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
			To:      link.CustomerEmail,
			Subject: "Payment Request Expired",
			Body:    fmt.Sprintf(constant.EmailPaymentLinkExpiredTemplate, totalFormatted),
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to publish expired email", traceIdAttr,
				slog.Int64("link_id", link.ID), slog.Any(constant.LogFieldErr, err))
		}
	}

	if len(expired) > 0 {
		slog.InfoContext(ctx, "expired payment links", traceIdAttr, slog.Int("count", len(expired)))
	}

	writeJSONResponse(w, http.StatusOK, model.ExpirePaymentLinksResponse{Expired: len(expired)})
}

func (in PaylinkHttp) buildPaymentLinkEmailBody(lineItems []model.PaymentLinkLineItem, totalAmount int64, shareCode string, expiresAt pgtype.Timestamp) string {
	var descriptions strings.Builder
	for _, item := range lineItems {
		descriptions.WriteString(item.Description)
		descriptions.WriteString(": ")
		descriptions.WriteString(in.UsdCurrencyFormatter.Sprintf("$%.2f", float64(item.Amount)/100))
		descriptions.WriteString("\n")
	}

	expiry := "further notice"
	if expiresAt.Valid {
		expiry = expiresAt.Time.Format("January 2, 2006 15:04 MST")
	}

	return fmt.Sprintf(constant.EmailPaymentLinkTemplate,
		strings.TrimRight(descriptions.String(), "\n"),
		in.UsdCurrencyFormatter.Sprintf("$%.2f", float64(totalAmount)/100),
		in.Cfg.GetString("payment_link.public_base_url")+"/pay/"+shareCode,
		expiry,
	)
}

func linkStatusConflict(status string) error {
	switch status {
	case constant.LinkStatusPaid:
		return &errs.HttpError{Code: http.StatusConflict, Message: "Link already paid"}
	case constant.LinkStatusCanceled:
		return &errs.HttpError{Code: http.StatusConflict, Message: "Link canceled"}
	case constant.LinkStatusExpired:
		return &errs.HttpError{Code: http.StatusConflict, Message: "Link expired"}
	default:
		return &errs.HttpError{Code: http.StatusConflict, Message: "Link is not payable"}
	}
}
