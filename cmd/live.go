package cmd

import (
	"context"
	"log"
	"log/slog"
	"spiriverse/common/constant"
	commonJetstream "spiriverse/common/jetstream"
	"spiriverse/inbound/event"
	"spiriverse/outbound/sqlgen"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

func runQueueLiveCmd(ctx context.Context) {
	cfg := newCfg("env")

	db := newDb(cfg)
	defer db.Close()

	querier := sqlgen.New(db)

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	commonJetstream.CreateQueueStream(ctx, js)

	st, err := js.Stream(ctx, constant.QueueStreamName)
	if err != nil {
		log.Fatalln("failed to get stream", err)
	}

	liveEvent := event.LiveEvent{
		Querier:   querier,
		Publisher: js,
		Timeout:   cfg.GetDuration("queue.live.timeout"),
	}

	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "consumer:live",
		FilterSubject: constant.LiveWildcard,
		MaxDeliver:    cfg.GetInt("queue.live.max_deliver"),
		AckWait:       cfg.GetDuration("queue.live.ack_wait"),
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
				case constant.SubjectAdvanceQueue:
					eventErr = liveEvent.AdvanceQueueHandler(ctx, msg.Data())
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

	slog.InfoContext(ctx, "live queue consumer started")

	<-ctx.Done()

	iter.Stop()

	slog.InfoContext(ctx, "live queue consumer stopped")
}
