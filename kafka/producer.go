package kafka

import (
	"context"
	"encoding/json"

	"github.com/Yaser-2004/flipkart-clone-server/models"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer}
}

// PublishOrderCreated emits the order.created event keyed by order id.
func (p *Producer) PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
