package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/abdrasaq14/payever-test/config"
	"github.com/abdrasaq14/payever-test/internal/domain/event"
	"github.com/abdrasaq14/payever-test/pkg/helpers"
)

// Consumes the user_events queue and logs each user_created event. Stands in
// for downstream services (CRM sync, analytics) that react to new accounts.
func main() {
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-event-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQEventsQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev event.UserCreated
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				logger.WithError(err).Warn("bad message, dropping")
				_ = msg.Nack(false, false)
				continue
			}
			if ev.Event != event.UserCreatedName {
				logger.WithField("event", ev.Event).Warn("unexpected event, dropping")
				_ = msg.Nack(false, false)
				continue
			}

			logger.WithFields(logrus.Fields{
				"user_id":     ev.User.ID,
				"email":       ev.User.Email,
				"occurred_at": ev.OccurredAt,
			}).Info("user created event received")
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("event worker listening on queue=%s", cfg.RabbitMQEventsQueue)
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
