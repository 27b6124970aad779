package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaEventPublisher writes game events keyed by game id, so one game's
// events stay ordered within a partition.
type KafkaEventPublisher struct {
	Writer messageWriter
}

var _ EventPublisher = (*KafkaEventPublisher)(nil)

func NewKafkaEventPublisher(writer *kafka.Writer) *KafkaEventPublisher {
	return &KafkaEventPublisher{Writer: writer}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, event GameEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.GameID), 10)),
		Value: payload,
	})
}
