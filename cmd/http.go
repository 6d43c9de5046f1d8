package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/pprof"
	commonJetstream "spiriverse/common/jetstream"
	inboundCron "spiriverse/inbound/cron"
	inboundHttp "spiriverse/inbound/http"
	"spiriverse/outbound/payment"
	"spiriverse/outbound/sqlgen"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if cfg.GetString("env") == "dev" {
		cpu, err := os.Create("http-cpu.prof")
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer cpu.Close()

		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()

		mem, err := os.Create("http-mem.prof")
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer mem.Close()

		err = pprof.WriteHeapProfile(mem)
		if err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
		defer mem.Close()
	}

	shutdownTracer := initTracer(ctx, cfg)
	defer shutdownTracer(context.Background())

	validate := validator.New()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	commonJetstream.CreateQueueStream(ctx, js)

	querier := sqlgen.New(db)

	gateway := &payment.HttpGateway{Cfg: cfg}
	gateway.Init()

	usdPrinter := message.NewPrinter(language.AmericanEnglish)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)

	inboundHttp.RegisterSessionHttp(mux, db, querier, js, gateway, validate, usdPrinter)
	inboundHttp.RegisterQueueHttp(mux, querier, cacheClient, js, gateway, validate, usdPrinter)
	inboundHttp.RegisterExpoHttp(mux, db, querier, cacheClient, js, gateway, validate)
	inboundHttp.RegisterPaylinkHttp(mux, cfg, querier, js, gateway, validate, usdPrinter)

	catalogCron := &inboundCron.CatalogCron{
		Cfg:     cfg,
		Cache:   cacheClient,
		Querier: querier,
	}

	err := catalogCron.InitRemainingCache(ctx)
	if err != nil {
		log.Fatalln("unable to init remaining cache", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(mux)),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started")

	go func() {
		catalogCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
