package cron

import (
	"context"
	"fmt"
	"log/slog"
	"spiriverse/common/constant"
	"spiriverse/common/vars"
	"spiriverse/outbound/sqlgen"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type CatalogCronTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	CacheMock redismock.ClientMock

	catalogCron CatalogCron
}

func (s *CatalogCronTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	cacheClient, cacheMock := redismock.NewClientMock()
	s.CacheMock = cacheMock

	cfg := viper.New()
	cfg.Set("cron.catalog.refresh.interval", "5s")
	cfg.Set("cron.catalog.refresh.timeout", "3s")

	s.catalogCron = CatalogCron{
		Cfg:     cfg,
		Cache:   cacheClient,
		Querier: s.Querier,
	}

	vars.SetCatalogs(nil)

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *CatalogCronTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestCatalogCronTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogCronTestSuite))
}

func (s *CatalogCronTestSuite) activeExpoRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "status", "share_code"}).
		AddRow(int64(1), "Mystic Expo", constant.EventStatusLive, "01BX5ZZKBKACTAV9WEVGEMMVRY")
}

func (s *CatalogCronTestSuite) itemRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "price_amount", "track_inventory", "quantity_total", "quantity_sold", "enabled"}).
		AddRow(int64(5), "Rose Quartz", int64(1500), true, pgtype.Int4{Int32: 10, Valid: true}, int32(4), true).
		AddRow(int64(6), "Palm Reading", int64(2500), false, pgtype.Int4{}, int32(0), true)
}

func (s *CatalogCronTestSuite) TestRefresh() {
	s.Run("snapshot replaced from active expos", func() {
		s.PgxMock.ExpectQuery("SELECT (.+) FROM expo_events WHERE status IN").
			WillReturnRows(s.activeExpoRows())
		s.PgxMock.ExpectQuery("SELECT (.+) FROM catalog_items WHERE expo_id").
			WithArgs(int64(1)).
			WillReturnRows(s.itemRows())

		s.catalogCron.refresh(context.Background())

		catalog, ok := vars.GetCatalog("01BX5ZZKBKACTAV9WEVGEMMVRY")
		s.True(ok)
		s.Equal("Mystic Expo", catalog.Name)
		s.Len(catalog.Items, 2)
		s.True(catalog.Items[0].Purchasable)
		s.Equal(int32(6), *catalog.Items[0].Remaining)
		s.Nil(catalog.Items[1].Remaining)

		s.NoError(s.PgxMock.ExpectationsWereMet())
	})

	s.Run("list error keeps the previous snapshot", func() {
		s.PgxMock.ExpectQuery("SELECT (.+) FROM expo_events WHERE status IN").
			WillReturnError(fmt.Errorf("database error"))

		s.catalogCron.refresh(context.Background())

		_, ok := vars.GetCatalog("01BX5ZZKBKACTAV9WEVGEMMVRY")
		s.True(ok)

		s.NoError(s.PgxMock.ExpectationsWereMet())
	})
}

func (s *CatalogCronTestSuite) TestInitRemainingCache() {
	s.Run("no active expos", func() {
		s.PgxMock.ExpectQuery("SELECT (.+) FROM expo_events WHERE status IN").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "status", "share_code"}))

		s.NoError(s.catalogCron.InitRemainingCache(context.Background()))
		s.NoError(s.PgxMock.ExpectationsWereMet())
	})

	s.Run("no tracked items", func() {
		s.PgxMock.ExpectQuery("SELECT (.+) FROM expo_events WHERE status IN").
			WillReturnRows(s.activeExpoRows())
		s.PgxMock.ExpectQuery("SELECT (.+) FROM catalog_items WHERE expo_id").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price_amount", "track_inventory", "quantity_total", "quantity_sold", "enabled"}).
				AddRow(int64(6), "Palm Reading", int64(2500), false, pgtype.Int4{}, int32(0), true))

		s.NoError(s.catalogCron.InitRemainingCache(context.Background()))
		s.NoError(s.PgxMock.ExpectationsWereMet())
		s.NoError(s.CacheMock.ExpectationsWereMet())
	})

	s.Run("tracked items seed remaining counters", func() {
		s.PgxMock.ExpectQuery("SELECT (.+) FROM expo_events WHERE status IN").
			WillReturnRows(s.activeExpoRows())
		s.PgxMock.ExpectQuery("SELECT (.+) FROM catalog_items WHERE expo_id").
			WithArgs(int64(1)).
			WillReturnRows(s.itemRows())

		s.CacheMock.ExpectTxPipeline()
		s.CacheMock.ExpectSetNX(fmt.Sprintf(constant.EachItemRemainingKey, int64(5)), int32(6), 0).SetVal(true)
		s.CacheMock.ExpectTxPipelineExec()

		s.NoError(s.catalogCron.InitRemainingCache(context.Background()))
		s.NoError(s.PgxMock.ExpectationsWereMet())
		s.NoError(s.CacheMock.ExpectationsWereMet())
	})

	s.Run("list error is returned", func() {
		s.PgxMock.ExpectQuery("SELECT (.+) FROM expo_events WHERE status IN").
			WillReturnError(fmt.Errorf("database error"))

		s.Error(s.catalogCron.InitRemainingCache(context.Background()))
		s.NoError(s.PgxMock.ExpectationsWereMet())
	})
}
