package consumer

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  "school-api-audit",
			MinBytes: 10e3, // 10KB
			MaxBytes: 10e6, // 10MB
		}),
	}
}

// StartAuditConsumer consumes entity change events and writes an audit
// log line for each mutation. Runs until the context is cancelled.
func (c *Consumer) StartAuditConsumer(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error().Msgf("Error reading message: %v", err)
			continue
		}

		c.processMessage(msg)
	}
}

// processMessage logs one event. Keys look like "subject.created.3".
func (c *Consumer) processMessage(msg kafka.Message) {
	key := string(msg.Key)
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		log.Error().Msgf("Unknown event key: %s", key)
		return
	}

	log.Info().
		Str("kind", parts[0]).
		Str("action", parts[1]).
		Str("id", parts[2]).
		Msgf("audit: %s %s", parts[0], parts[1])
}
