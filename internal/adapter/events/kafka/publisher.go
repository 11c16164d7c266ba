package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/iho/transfergate/internal/domain"
)

// Publisher implements usecase.EventPublisher on a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Publisher writing to the transfer.recorded topic.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    domain.EventTypeTransferRecorded,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish writes the event keyed by transfer ID so consumers see a
// stable partition per transfer.
func (p *Publisher) Publish(ctx context.Context, event domain.TransferRecorded) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TransferID),
		Value: data,
	})
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
