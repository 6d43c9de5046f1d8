package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"spiriverse/common"
	"spiriverse/common/constant"
	"spiriverse/common/contract"
	"spiriverse/common/errs"
	"spiriverse/common/otel"
	"spiriverse/common/vars"
	"spiriverse/model"
	"spiriverse/outbound/payment"
	"spiriverse/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
)

type ExpoHttp struct {
	Db        contract.DbConn
	Querier   *sqlgen.Queries
	Cache     *redis.Client
	Publisher jetstream.Publisher
	Gateway   payment.Gateway
	Validate  *validator.Validate
}

func RegisterExpoHttp(
	mux *http.ServeMux,
	db contract.DbConn,
	querier *sqlgen.Queries,
	cache *redis.Client,
	publisher jetstream.Publisher,
	gateway payment.Gateway,
	validate *validator.Validate,
) *ExpoHttp {
	in := &ExpoHttp{
		Db:        db,
		Querier:   querier,
		Cache:     cache,
		Publisher: publisher,
		Gateway:   gateway,
		Validate:  validate,
	}

	mux.HandleFunc("POST /api/expos", in.create)
	mux.HandleFunc("POST /api/expos/{id}/status", in.updateStatus)
	mux.HandleFunc("POST /api/expos/{id}/items", in.createItem)
	mux.HandleFunc("POST /api/expos/items/{itemId}/toggle", in.toggleItem)
	mux.HandleFunc("POST /api/expos/{id}/sales", in.recordSale)
	mux.HandleFunc("GET /api/expos/{id}/stats", in.stats)
	mux.HandleFunc("GET /api/expo/{code}", in.catalog)
	mux.HandleFunc("POST /api/expo/{code}/checkout", in.checkout)

	return in
}

func (in ExpoHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateExpoRequest
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
	slog.InfoContext(ctx, "create expo receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	shareCode := generateShareCode()
	returnId, err := in.Querier.InsertExpoEvent(ctx, sqlgen.InsertExpoEventParams{
		PractitionerID: req.PractitionerId,
		Name:           req.Name,
		ShareCode:      shareCode,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert expo", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "insert expo success", traceIdAttr, slog.Any(constant.LogFieldResponse, returnId))

	writeJSONResponse(w, http.StatusOK, model.CreateExpoResponse{
		Id:        returnId,
		ShareCode: shareCode,
	})
}

func (in ExpoHttp) updateStatus(w http.ResponseWriter, r *http.Request) {
	expoId, err := parsePathId(r, "id")
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

	ctx, span := otel.Tracer.Start(r.Context(), "ExpoHttp.updateStatus")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "update expo status receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	expo, err := in.Querier.FindExpoEventById(ctx, expoId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find expo", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Expo not found"})
		return
	}

	if expo.Status == constant.EventStatusEnded {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Expo already ended"})
		return
	}

	// Setup is the pre-launch state. Once an expo has gone live it can only
	// pause, resume, or end.
	if req.Status == constant.EventStatusSetup && expo.Status != constant.EventStatusSetup {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Expo already started"})
		return
	}

	cmd, err := in.Querier.UpdateExpoEventStatus(ctx, sqlgen.UpdateExpoEventStatusParams{ID: expoId, Status: req.Status})
	if err != nil {
		slog.ErrorContext(ctx, "failed to update expo status", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Expo already ended"})
		return
	}

	writeJSONResponse(w, http.StatusOK, nil)
}

func (in ExpoHttp) createItem(w http.ResponseWriter, r *http.Request) {
	expoId, err := parsePathId(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "ExpoHttp.createItem")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create item receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	expo, err := in.Querier.FindExpoEventById(ctx, expoId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find expo", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Expo not found"})
		return
	}

	if expo.Status == constant.EventStatusEnded {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Expo already ended"})
		return
	}

	returnId, err := in.Querier.InsertCatalogItem(ctx, sqlgen.InsertCatalogItemParams{
		ExpoID:         expoId,
		Name:           req.Name,
		PriceAmount:    req.PriceAmount,
		TrackInventory: req.TrackInventory,
		QuantityTotal:  pgtype.Int4{Int32: req.QuantityTotal, Valid: req.TrackInventory},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert item", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if req.TrackInventory {
		key := fmt.Sprintf(constant.EachItemRemainingKey, returnId)
		if err := in.Cache.SetNX(ctx, key, req.QuantityTotal, 0).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to seed remaining counter", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}

	slog.InfoContext(ctx, "insert item success", traceIdAttr, slog.Any(constant.LogFieldResponse, returnId))

	writeJSONResponse(w, http.StatusOK, model.CreateItemResponse{Id: returnId})
}

func (in ExpoHttp) toggleItem(w http.ResponseWriter, r *http.Request) {
	itemId, err := parsePathId(r, "itemId")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "ExpoHttp.toggleItem")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "toggle item receive request", slog.Int64("item_id", itemId), traceIdAttr)

	item, err := in.Querier.ToggleCatalogItemEnabled(ctx, itemId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to toggle item", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Item not found"})
		return
	}

	// Disabling never touches counts. Re-enabling resumes from the stored
	// quantity_sold, so inventory survives the toggle round trip.
	resp := model.ToggleItemResponse{Id: item.ID, Enabled: item.Enabled}
	if item.TrackInventory {
		remaining := item.QuantityTotal.Int32 - item.QuantitySold
		resp.Remaining = &remaining

		if item.Enabled {
			key := fmt.Sprintf(constant.EachItemRemainingKey, itemId)
			if err := in.Cache.SetNX(ctx, key, remaining, 0).Err(); err != nil {
				slog.ErrorContext(ctx, "failed to seed remaining counter", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			}
		}
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in ExpoHttp) recordSale(w http.ResponseWriter, r *http.Request) {
	expoId, err := parsePathId(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "ExpoHttp.recordSale")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "record sale receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	expo, err := in.Querier.FindExpoEventById(ctx, expoId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find expo", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Expo not found"})
		return
	}

	if expo.Status != constant.EventStatusLive {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Expo is not live"})
		return
	}

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

	item, err := withTx.IncrementCatalogItemSold(ctx, sqlgen.IncrementCatalogItemSoldParams{ID: req.ItemId, Quantity: req.Quantity})
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to increment quantity sold", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, in.classifySaleRejection(ctx, expoId, req.ItemId))
		return
	}

	if item.ExpoID != expoId {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Item not found"})
		return
	}

	amount := item.PriceAmount * int64(req.Quantity)
	saleId, err := withTx.InsertSaleRecord(ctx, sqlgen.InsertSaleRecordParams{
		ExpoID:        expoId,
		ItemID:        item.ID,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
		Amount:        amount,
		Source:        constant.SaleSourceWalkup,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert sale record", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	resp := model.RecordSaleResponse{Id: saleId, Amount: amount}
	if item.TrackInventory {
		remaining := item.QuantityTotal.Int32 - item.QuantitySold
		resp.Remaining = &remaining

		key := fmt.Sprintf(constant.EachItemRemainingKey, item.ID)
		if err := in.Cache.DecrBy(ctx, key, int64(req.Quantity)).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to decrement remaining counter", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}

	slog.InfoContext(ctx, "record sale success", traceIdAttr, slog.Any(constant.LogFieldResponse, resp))

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in ExpoHttp) checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "ExpoHttp.checkout")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "checkout receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	expo, err := in.Querier.FindExpoEventByShareCode(ctx, r.PathValue("code"))
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find expo", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Expo not found"})
		return
	}

	if expo.Status != constant.EventStatusLive {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Expo is not live"})
		return
	}

	item, err := in.Querier.FindCatalogItemById(ctx, req.ItemId)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find item", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows || item.ExpoID != expo.ID {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Item not found"})
		return
	}

	if !item.Enabled {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Item is disabled"})
		return
	}

	// The counter is a fast gate against stampedes on scarce items. The
	// conditional UPDATE below is still the authority on inventory.
	remainingKey := fmt.Sprintf(constant.EachItemRemainingKey, item.ID)
	if item.TrackInventory {
		remaining, err := in.Cache.DecrBy(ctx, remainingKey, int64(req.Quantity)).Result()
		if err != nil {
			slog.ErrorContext(ctx, "failed to decrement remaining counter", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			writeErrorResponse(w, err)
			return
		}

		if remaining < 0 {
			if err := in.Cache.IncrBy(ctx, remainingKey, int64(req.Quantity)).Err(); err != nil {
				slog.ErrorContext(ctx, "failed to restore remaining counter", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			}

			writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Insufficient inventory"})
			return
		}
	}

	amount := item.PriceAmount * int64(req.Quantity)
	chargeId, err := in.Gateway.Charge(ctx, req.CardToken, amount)
	if err != nil {
		if item.TrackInventory {
			if restoreErr := in.Cache.IncrBy(ctx, remainingKey, int64(req.Quantity)).Err(); restoreErr != nil {
				slog.ErrorContext(ctx, "failed to restore remaining counter", traceIdAttr, slog.Any(constant.LogFieldErr, restoreErr))
			}
		}

		if err == payment.ErrDeclined {
			slog.WarnContext(ctx, "payment charge declined", traceIdAttr)
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusPaymentRequired, Message: "Payment failed"})
			return
		}

		slog.ErrorContext(ctx, "failed to charge payment", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

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

	sold, err := withTx.IncrementCatalogItemSold(ctx, sqlgen.IncrementCatalogItemSoldParams{ID: item.ID, Quantity: req.Quantity})
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to increment quantity sold", traceIdAttr, slog.Any(constant.LogFieldErr, err),
			slog.String("charge_id", chargeId))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		if item.TrackInventory {
			if restoreErr := in.Cache.IncrBy(ctx, remainingKey, int64(req.Quantity)).Err(); restoreErr != nil {
				slog.ErrorContext(ctx, "failed to restore remaining counter", traceIdAttr, slog.Any(constant.LogFieldErr, restoreErr))
			}
		}

		// A concurrent sale consumed the stock between the counter gate and
		// the conditional update. The buyer gets nothing, so the charge goes
		// back.
		slog.WarnContext(ctx, "inventory refused a charged checkout", traceIdAttr, slog.String("charge_id", chargeId))
		if refundErr := in.Gateway.Refund(ctx, chargeId); refundErr != nil {
			slog.ErrorContext(ctx, "failed to refund charge", traceIdAttr,
				slog.String("charge_id", chargeId), slog.Any(constant.LogFieldErr, refundErr))
		}

		writeErrorResponse(w, in.classifySaleRejection(ctx, expo.ID, item.ID))
		return
	}

	saleId, err := withTx.InsertSaleRecord(ctx, sqlgen.InsertSaleRecordParams{
		ExpoID:        expo.ID,
		ItemID:        sold.ID,
		Quantity:      req.Quantity,
		PaymentMethod: constant.PaymentMethodCard,
		Amount:        amount,
		Source:        constant.SaleSourceOnlineCheckout,
		CustomerEmail: pgtype.Text{String: req.Email, Valid: true},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert sale record", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSaleRecorded, model.SaleRecordedEventMessage{
		SaleID:   saleId,
		Email:    req.Email,
		Name:     req.Name,
		ItemName: sold.Name,
		Quantity: req.Quantity,
		Amount:   amount,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish sale recorded message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "checkout success", traceIdAttr, slog.Int64("sale_id", saleId))

	writeJSONResponse(w, http.StatusOK, model.CheckoutResponse{SaleId: saleId, Amount: amount})
}

func (in ExpoHttp) catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shareCode := r.PathValue("code")

	if catalog, ok := vars.GetCatalog(shareCode); ok {
		writeJSONResponse(w, http.StatusOK, catalog)
		return
	}

	expo, err := in.Querier.FindExpoEventByShareCode(ctx, shareCode)
	if err != nil && err != pgx.ErrNoRows {
		slog.ErrorContext(ctx, "failed to find expo", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Expo not found"})
		return
	}

	items, err := in.Querier.ListCatalogItemsByExpo(ctx, expo.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list items", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, vars.BuildCatalogResponse(expo.Name, expo.Status, items))
}

func (in ExpoHttp) stats(w http.ResponseWriter, r *http.Request) {
	expoId, err := parsePathId(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx := r.Context()

	if _, err := in.Querier.FindExpoEventById(ctx, expoId); err != nil {
		if err == pgx.ErrNoRows {
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Expo not found"})
			return
		}

		slog.ErrorContext(ctx, "failed to find expo", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	stats, err := in.Querier.GetExpoStats(ctx, expoId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get expo stats", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.ExpoStatsResponse{
		SalesCount: stats.SalesCount,
		Revenue:    stats.Revenue,
		ItemsSold:  stats.ItemsSold,
	})
}

// classifySaleRejection turns a refused conditional UPDATE into the precise
// conflict. The UPDATE refuses for three different reasons and RETURNING
// cannot tell them apart.
func (in ExpoHttp) classifySaleRejection(ctx context.Context, expoId, itemId int64) error {
	item, err := in.Querier.FindCatalogItemById(ctx, itemId)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &errs.HttpError{Code: http.StatusNotFound, Message: "Item not found"}
		}
		return err
	}

	if item.ExpoID != expoId {
		return &errs.HttpError{Code: http.StatusNotFound, Message: "Item not found"}
	}

	if !item.Enabled {
		return &errs.HttpError{Code: http.StatusConflict, Message: "Item is disabled"}
	}

	return &errs.HttpError{Code: http.StatusConflict, Message: "Insufficient inventory"}
}
