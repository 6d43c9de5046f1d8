package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"spiriverse/common"
	"spiriverse/common/constant"
	"spiriverse/common/contract"
	"spiriverse/common/errs"
	"spiriverse/common/otel"
	"spiriverse/model"
	"spiriverse/outbound/payment"
	"spiriverse/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/text/message"
)

type SessionHttp struct {
	Db                   contract.DbConn
	Querier              *sqlgen.Queries
	Publisher            jetstream.Publisher
	Gateway              payment.Gateway
	Validate             *validator.Validate
	UsdCurrencyFormatter *message.Printer
}

func RegisterSessionHttp(
	mux *http.ServeMux,
	db contract.DbConn,
	querier *sqlgen.Queries,
	publisher jetstream.Publisher,
	gateway payment.Gateway,
	validate *validator.Validate,
	usdCurrencyFormatter *message.Printer,
) *SessionHttp {
	in := &SessionHttp{
		Db:                   db,
		Querier:              querier,
		Publisher:            publisher,
		Gateway:              gateway,
		Validate:             validate,
		UsdCurrencyFormatter: usdCurrencyFormatter,
	}

	mux.HandleFunc("POST /api/sessions", in.create)
	mux.HandleFunc("POST /api/sessions/{id}/status", in.updateStatus)
	mux.HandleFunc("POST /api/sessions/{id}/next", in.next)
	mux.HandleFunc("POST /api/sessions/entries/{entryId}/complete", in.complete)

	return in
}

func (in SessionHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx := r.Context()
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create session receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	shareCode := generateShareCode()
	returnId, err := in.Querier.InsertLiveSession(ctx, sqlgen.InsertLiveSessionParams{
		PractitionerID:    req.PractitionerId,
		Title:             req.Title,
		PriceAmount:       req.PriceAmount,
		AllowCustomAmount: req.AllowCustomAmount,
		ShareCode:         shareCode,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert session", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "insert session success", traceIdAttr, slog.Any(constant.LogFieldResponse, returnId))

	writeJSONResponse(w, http.StatusOK, model.CreateSessionResponse{
		Id:        returnId,
		ShareCode: shareCode,
	})
}

func (in SessionHttp) updateStatus(w http.ResponseWriter, r *http.Request) {
	sessionId, err := parsePathId(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "SessionHttp.updateStatus")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "update session status receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	session, err := in.Querier.FindLiveSessionById(ctx, sessionId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find session", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Session not found"})
		return
	}

	if session.Status == constant.EventStatusEnded {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Session already ended"})
		return
	}

	// Setup is the pre-launch state. Once a session has gone live it can only
	// pause, resume, or end.
	if req.Status == constant.EventStatusSetup && session.Status != constant.EventStatusSetup {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Session already started"})
		return
	}

	if req.Status != constant.EventStatusEnded {
		if _, err := in.Querier.UpdateLiveSessionStatus(ctx, sqlgen.UpdateLiveSessionStatusParams{ID: sessionId, Status: req.Status}); err != nil {
			slog.ErrorContext(ctx, "failed to update session status", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			writeErrorResponse(w, err)
			return
		}

		writeJSONResponse(w, http.StatusOK, nil)
		return
	}

	// Ending a session cancels every waiting entry in the same transaction so
	// the queue can never keep accepting readings for a dead session.
	tx, err := in.Db.Begin(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to begin transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.ErrorContext(ctx, "failed to rollback transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	withTx := in.Querier.WithTx(tx)

	if _, err := withTx.UpdateLiveSessionStatus(ctx, sqlgen.UpdateLiveSessionStatusParams{ID: sessionId, Status: constant.EventStatusEnded}); err != nil {
		slog.ErrorContext(ctx, "failed to update session status", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	canceledEntries, err := withTx.CancelWaitingQueueEntriesBySession(ctx, sessionId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel waiting entries", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	for _, entry := range canceledEntries {
		if err := in.Gateway.Void(ctx, entry.PaymentAuthorizationID); err != nil {
			slog.ErrorContext(ctx, "failed to void authorization hold", traceIdAttr,
				slog.Int64("entry_id", entry.ID), slog.Any(constant.LogFieldErr, err))
		}

		err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
			To:      entry.CustomerEmail,
			Subject: "Queue Spot Released",
			Body:    fmt.Sprintf(constant.EmailQueueCanceledTemplate, entry.CustomerName, session.Title),
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to publish cancellation email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}

	slog.InfoContext(ctx, "session ended", traceIdAttr, slog.Int("canceled_entries", len(canceledEntries)))

	writeJSONResponse(w, http.StatusOK, nil)
}

func (in SessionHttp) next(w http.ResponseWriter, r *http.Request) {
	sessionId, err := parsePathId(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "SessionHttp.next")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "start next reading receive request", slog.Int64("session_id", sessionId), traceIdAttr)

	promoted, err := in.Querier.PromoteNextQueueEntry(ctx, sessionId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to promote next entry", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		_, currentErr := in.Querier.FindCurrentQueueEntry(ctx, sessionId)
		if currentErr != nil && currentErr != pgx.ErrNoRows {
			slog.ErrorContext(ctx, "failed to find current entry", traceIdAttr, slog.Any(constant.LogFieldErr, currentErr))
			writeErrorResponse(w, currentErr)
			return
		}

		if currentErr == nil {
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Reading already in progress"})
			return
		}

		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Queue is empty"})
		return
	}

	slog.InfoContext(ctx, "reading started", traceIdAttr, slog.Any(constant.LogFieldResponse, promoted.ID))

	writeJSONResponse(w, http.StatusOK, model.StartReadingResponse{
		EntryId:      promoted.ID,
		CustomerName: promoted.CustomerName,
		Question:     promoted.Question.String,
	})
}

func (in SessionHttp) complete(w http.ResponseWriter, r *http.Request) {
	entryId, err := parsePathId(r, "entryId")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.CompleteReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "SessionHttp.complete")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "complete reading receive request", slog.Int64("entry_id", entryId), traceIdAttr)

	entry, err := in.Querier.FindQueueEntryInProgressById(ctx, entryId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find entry", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Reading is not in progress"})
		return
	}

	session, err := in.Querier.FindLiveSessionById(ctx, entry.SessionID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to find session", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	// The conditional update claims the entry before the capture. Only one of
	// two concurrent completes wins the claim, so the hold is captured once.
	cmd, err := in.Querier.CompleteQueueEntry(ctx, sqlgen.CompleteQueueEntryParams{
		ID:          entryId,
		SummaryNote: pgtype.Text{String: req.SummaryNote, Valid: true},
		SummaryCta:  pgtype.Text{String: req.SummaryCta, Valid: req.SummaryCta != ""},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to complete entry", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if cmd.RowsAffected() == 0 {
		slog.WarnContext(ctx, "entry no longer in progress", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Reading is not in progress"})
		return
	}

	if err := in.Gateway.Capture(ctx, entry.PaymentAuthorizationID, entry.ChargeAmount); err != nil {
		if _, reopenErr := in.Querier.ReopenQueueEntry(ctx, entryId); reopenErr != nil {
			slog.ErrorContext(ctx, "failed to reopen entry after capture failure", traceIdAttr,
				slog.Int64("entry_id", entryId), slog.Any(constant.LogFieldErr, reopenErr))
		}

		if err == payment.ErrDeclined {
			slog.WarnContext(ctx, "payment capture declined", traceIdAttr)
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusPaymentRequired, Message: "Payment capture failed"})
			return
		}

		slog.ErrorContext(ctx, "failed to capture payment", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	// Auto-advance rides the work queue: a durable consumer promotes the next
	// waiting entry even if this process dies right here.
	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectAdvanceQueue, model.AdvanceQueueEventMessage{
		SessionID: entry.SessionID,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish advance queue message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
		To:      entry.CustomerEmail,
		Subject: "Your Reading Summary",
		Body:    in.buildReadingSummaryEmailBody(entry, session.Title, req),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish summary email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "reading completed", traceIdAttr, slog.Int64("entry_id", entryId))

	writeJSONResponse(w, http.StatusOK, nil)
}

func (in SessionHttp) buildReadingSummaryEmailBody(entry sqlgen.FindQueueEntryInProgressByIdRow, title string, req model.CompleteReadingRequest) string {
	amountFormatted := in.UsdCurrencyFormatter.Sprintf("$%.2f", float64(entry.ChargeAmount)/100)

	return fmt.Sprintf(constant.EmailReadingSummaryTemplate,
		entry.CustomerName,
		title,
		req.SummaryNote,
		req.SummaryCta,
		amountFormatted,
	)
}
