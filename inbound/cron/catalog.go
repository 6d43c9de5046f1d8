package cron

import (
	"context"
	"fmt"
	"log/slog"
	"spiriverse/common"
	"spiriverse/common/constant"
	"spiriverse/common/vars"
	"spiriverse/model"
	"spiriverse/outbound/sqlgen"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type CatalogCron struct {
	Cfg     *viper.Viper
	Cache   *redis.Client
	Querier *sqlgen.Queries
}

func (in CatalogCron) Start(ctx context.Context) {
	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.catalog.refresh.interval"))
	defer refreshTicker.Stop()

	// Run initial refresh
	in.refresh(ctx)

	slog.Info("catalog cron started")

	for {
		select {
		case <-refreshTicker.C:
			in.refresh(ctx)
		case <-ctx.Done():
			slog.Info("catalog cron stopped")
			return
		}
	}
}

func (in CatalogCron) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.catalog.refresh.timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "refreshing catalogs", traceIdAttr)

	expos, err := in.Querier.ListActiveExpoEvents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list active expos", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	catalogs := make(map[string]model.ExpoCatalogResponse, len(expos))
	for _, expo := range expos {
		items, err := in.Querier.ListCatalogItemsByExpo(ctx, expo.ID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to list catalog items", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			return
		}

		catalogs[expo.ShareCode] = vars.BuildCatalogResponse(expo.Name, expo.Status, items)
	}

	vars.SetCatalogs(catalogs)

	slog.DebugContext(ctx, "catalogs refreshed successfully", traceIdAttr)
}

func (in CatalogCron) InitRemainingCache(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	expos, err := in.Querier.ListActiveExpoEvents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list active expos", slog.Any(constant.LogFieldErr, err))
		return fmt.Errorf("list active expos: %w", err)
	}

	if len(expos) == 0 {
		slog.InfoContext(ctx, "no active expos found to initialize")
		return nil
	}

	pipe := in.Cache.TxPipeline()
	seeded := 0
	for _, expo := range expos {
		items, err := in.Querier.ListCatalogItemsByExpo(ctx, expo.ID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to list catalog items", slog.Any(constant.LogFieldErr, err))
			return fmt.Errorf("list catalog items: %w", err)
		}

		for _, item := range items {
			if !item.TrackInventory {
				continue
			}

			remaining := item.QuantityTotal.Int32 - item.QuantitySold
			if remaining < 0 {
				remaining = 0
			}

			pipe.SetNX(ctx, fmt.Sprintf(constant.EachItemRemainingKey, item.ID), remaining, 0)
			seeded++
		}
	}

	if seeded == 0 {
		slog.InfoContext(ctx, "no tracked items found to initialize")
		return nil
	}

	if _, err = pipe.Exec(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to initialize remaining counters in cache", slog.Any(constant.LogFieldErr, err))
		return fmt.Errorf("execute pipeline: %w", err)
	}

	slog.InfoContext(ctx, "remaining counters initialized successfully")
	return nil
}
