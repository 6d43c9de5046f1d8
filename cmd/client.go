package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

func runClientCmd(ctx context.Context) {
	cfg := newCfg("env")

	expireTicker := time.NewTicker(cfg.GetDuration("client.expire_interval"))
	defer expireTicker.Stop()

	expireUrl := cfg.GetString("client.expire_url")

	client := &http.Client{
		Timeout: 20 * time.Second,
	}

	slog.InfoContext(ctx, "client started", slog.String("expire_url", expireUrl))

	go func() {
		for {
			select {
			case <-expireTicker.C:
				go func() {
					reqCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()

					req, err := http.NewRequestWithContext(reqCtx, "POST", expireUrl, nil)
					if err != nil {
						slog.ErrorContext(ctx, "Failed to create request",
							slog.String("url", expireUrl),
							slog.Any("error", err))
						return
					}

					// Fire and forget - ignore response
					resp, _ := client.Do(req)
					if resp != nil {
						resp.Body.Close() // Important to prevent resource leaks
					}
				}()

			case <-ctx.Done():
				return
			}
		}
	}()

	<-ctx.Done()

	slog.InfoContext(ctx, "client stopped")
}
