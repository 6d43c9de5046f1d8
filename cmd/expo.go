package cmd

import (
	"context"
	"log"
	"log/slog"
	"spiriverse/common/constant"
	commonJetstream "spiriverse/common/jetstream"
	"spiriverse/inbound/event"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func runQueueExpoCmd(ctx context.Context) {
	cfg := newCfg("env")

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	commonJetstream.CreateQueueStream(ctx, js)

	st, err := js.Stream(ctx, constant.QueueStreamName)
	if err != nil {
		log.Fatalln("failed to get stream", err)
	}

	expoEvent := event.ExpoEvent{
		Publisher:            js,
		UsdCurrencyFormatter: message.NewPrinter(language.AmericanEnglish),
		Timeout:              cfg.GetDuration("queue.expo.timeout"),
	}

	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "consumer:expo",
		FilterSubject: constant.ExpoWildcard,
		MaxDeliver:    cfg.GetInt("queue.expo.max_deliver"),
		AckWait:       cfg.GetDuration("queue.expo.ack_wait"),
	})
	if err != nil {
		log.Fatalln("failed to create consumer", err)
	}

	iter, err := cons.Messages()
	if err != nil {
		panic(err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := iter.Next()
				if err != nil && err != jetstream.ErrMsgIteratorClosed {
					slog.ErrorContext(ctx, "Error fetching message", slog.Any(constant.LogFieldErr, err))
					continue
				}

				if msg == nil {
					continue
				}

				var eventErr error
				switch msg.Subject() {
				case constant.SubjectSaleRecorded:
					eventErr = expoEvent.SaleRecordedHandler(ctx, msg.Data())
				}

				if eventErr != nil {
					msg.NakWithDelay(1 * time.Second)
					continue
				}

				if err := msg.Ack(); err != nil {
					slog.ErrorContext(ctx, "Error acknowledging message",
						slog.Any(constant.LogFieldErr, err),
						slog.Any(constant.LogFieldPayload, string(msg.Data())),
						slog.String("subject", msg.Subject()),
					)
					continue
				}
			}
		}
	}()

	slog.InfoContext(ctx, "expo queue consumer started")

	<-ctx.Done()

	iter.Stop()

	slog.InfoContext(ctx, "expo queue consumer stopped")
}
