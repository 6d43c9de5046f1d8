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

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/message"
)

type QueueHttp struct {
	Querier              *sqlgen.Queries
	Cache                *redis.Client
	Publisher            jetstream.Publisher
	Gateway              payment.Gateway
	Validate             *validator.Validate
	UsdCurrencyFormatter *message.Printer
}

func RegisterQueueHttp(
	mux *http.ServeMux,
	querier *sqlgen.Queries,
	cache *redis.Client,
	publisher jetstream.Publisher,
	gateway payment.Gateway,
	validate *validator.Validate,
	usdCurrencyFormatter *message.Printer,
) *QueueHttp {
	in := &QueueHttp{
		Querier:              querier,
		Cache:                cache,
		Publisher:            publisher,
		Gateway:              gateway,
		Validate:             validate,
		UsdCurrencyFormatter: usdCurrencyFormatter,
	}

	mux.HandleFunc("GET /api/live/{code}", in.view)
	mux.HandleFunc("POST /api/live/{code}/queue", in.join)
	mux.HandleFunc("DELETE /api/live/queue/{entryId}", in.leave)

	return in
}

func (in QueueHttp) join(w http.ResponseWriter, r *http.Request) {
	var req model.JoinQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "QueueHttp.join")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "join queue receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	session, err := in.Querier.FindLiveSessionByShareCode(ctx, r.PathValue("code"))
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find session", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Session not found"})
		return
	}

	if session.Status != constant.EventStatusLive {
		slog.DebugContext(ctx, "session not live", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Session is not live"})
		return
	}

	emailLock, err := in.Cache.SetNX(ctx, fmt.Sprintf(constant.QueueEmailLock, session.ID, req.Email), true, constant.QueueEmailLockDefaultTTL).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to set email lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if !emailLock {
		slog.DebugContext(ctx, "email already in queue", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Email already in queue"})
		return
	}

	emailExist, err := in.Querier.ExistsActiveQueueEntryByEmail(ctx, sqlgen.ExistsActiveQueueEntryByEmailParams{
		SessionID:     session.ID,
		CustomerEmail: req.Email,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to check active entry by email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if emailExist {
		slog.DebugContext(ctx, "email already in queue", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Email already in queue"})
		return
	}

	chargeAmount := session.PriceAmount
	if session.AllowCustomAmount && req.CustomAmount > 0 {
		chargeAmount = req.CustomAmount
	}

	authorizationId, err := in.Gateway.Authorize(ctx, req.PaymentMethodToken, chargeAmount)
	if err != nil {
		if err == payment.ErrDeclined {
			slog.WarnContext(ctx, "payment authorization declined", traceIdAttr)
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusPaymentRequired, Message: "Payment authorization failed"})
			return
		}

		slog.ErrorContext(ctx, "failed to authorize payment", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	returnId, err := in.Querier.InsertQueueEntry(ctx, sqlgen.InsertQueueEntryParams{
		SessionID:              session.ID,
		CustomerName:           req.Name,
		CustomerEmail:          req.Email,
		Question:               pgtype.Text{String: req.Question, Valid: req.Question != ""},
		PaymentAuthorizationID: authorizationId,
		ChargeAmount:           chargeAmount,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert queue entry", traceIdAttr, slog.Any(constant.LogFieldErr, err))

		if voidErr := in.Gateway.Void(ctx, authorizationId); voidErr != nil {
			slog.ErrorContext(ctx, "failed to void authorization hold", traceIdAttr, slog.Any(constant.LogFieldErr, voidErr))
		}

		writeErrorResponse(w, err)
		return
	}

	position, err := in.Querier.CountQueueEntryPosition(ctx, sqlgen.CountQueueEntryPositionParams{
		SessionID: session.ID,
		ID:        returnId,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to count queue position", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
		To:      req.Email,
		Subject: "You Are In The Queue",
		Body:    in.buildQueueJoinedEmailBody(req.Name, session.Title, position, chargeAmount),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish joined email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "join queue success", traceIdAttr, slog.Any(constant.LogFieldResponse, returnId))

	writeJSONResponse(w, http.StatusOK, model.JoinQueueResponse{
		Id:           returnId,
		Position:     position,
		ChargeAmount: chargeAmount,
	})
}

func (in QueueHttp) leave(w http.ResponseWriter, r *http.Request) {
	entryId, err := parsePathId(r, "entryId")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "QueueHttp.leave")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "leave queue receive request", slog.Int64("entry_id", entryId), traceIdAttr)

	entry, err := in.Querier.FindQueueEntryById(ctx, entryId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find entry", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Entry not found"})
		return
	}

	if entry.Status != constant.EntryStatusWaiting {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Entry is not waiting"})
		return
	}

	cmd, err := in.Querier.CancelQueueEntry(ctx, entryId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel entry", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Entry is not waiting"})
		return
	}

	if err := in.Gateway.Void(ctx, entry.PaymentAuthorizationID); err != nil {
		slog.ErrorContext(ctx, "failed to void authorization hold", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	slog.InfoContext(ctx, "leave queue success", traceIdAttr, slog.Int64("entry_id", entryId))

	writeJSONResponse(w, http.StatusOK, nil)
}

func (in QueueHttp) view(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := in.Querier.FindLiveSessionByShareCode(ctx, r.PathValue("code"))
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find session", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Session not found"})
		return
	}

	resp := model.SessionQueueResponse{
		Title:   session.Title,
		Status:  session.Status,
		Waiting: []model.QueueEntryResponse{},
	}

	current, err := in.Querier.FindCurrentQueueEntry(ctx, session.ID)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find current entry", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == nil {
		resp.Current = &model.CurrentReadingResponse{CustomerName: current.CustomerName}
	}

	waiting, err := in.Querier.ListWaitingQueueEntries(ctx, session.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list waiting entries", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	// Positions are derived from the live ordering, never stored: a cancel or
	// promotion ahead of an entry changes its rank on the next read.
	for i, entry := range waiting {
		resp.Waiting = append(resp.Waiting, model.QueueEntryResponse{
			Id:           entry.ID,
			CustomerName: entry.CustomerName,
			Position:     int64(i + 1),
		})
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in QueueHttp) buildQueueJoinedEmailBody(name, title string, position, chargeAmount int64) string {
	amountFormatted := in.UsdCurrencyFormatter.Sprintf("$%.2f", float64(chargeAmount)/100)
	return fmt.Sprintf(constant.EmailQueueJoinedTemplate, name, title, position, amountFormatted)
}
