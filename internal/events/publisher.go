package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Publisher emits entity change events to Kafka. Publishing is best
// effort: a broker failure is logged and never fails the request that
// triggered it. A nil Publisher (Kafka disabled) is safe to call.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a new instance of Publisher.
func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

// Publish sends one change event. Key format: "{kind}.{action}.{id}",
// e.g. "subject.created.3"; the value is the entity JSON.
func (p *Publisher) Publish(ctx context.Context, kind, action string, id int, payload interface{}) {
	if p == nil || p.writer == nil {
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling %s event for %s %d", action, kind, id)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s.%s.%d", kind, action, id)),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing %s event for %s %d", action, kind, id)
	}
}
