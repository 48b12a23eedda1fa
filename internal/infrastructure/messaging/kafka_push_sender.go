package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PushEvent is the message a push gateway consumes from the topic.
type PushEvent struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Tokens []string `json:"tokens"`
}

// KafkaPushSender publishes device push messages to a Kafka topic.
type KafkaPushSender struct {
	w     messageWriter
	topic string
}

var _ interfaces.IPushSender = (*KafkaPushSender)(nil)

func NewKafkaPushSender(brokers []string, topic string) *KafkaPushSender {
	log := logrus.WithField("topic", topic)
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Logger:                 kafka.LoggerFunc(log.Debugf),
		ErrorLogger:            kafka.LoggerFunc(log.Errorf),
		AllowAutoTopicCreation: true,
	}
	return &KafkaPushSender{w: w, topic: topic}
}

func (s *KafkaPushSender) Send(ctx context.Context, msg entities.PushMessage) error {
	b, err := json.Marshal(PushEvent{Type: "push", Title: msg.Title, Body: msg.Body, Tokens: msg.Tokens})
	if err != nil {
		return fmt.Errorf("marshal push event: %w", err)
	}

	err = s.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Title),
		Value: b,
		Topic: s.topic,
	})
	if err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}
	logger.FromContext(ctx).WithField("tokens", len(msg.Tokens)).Debug("[push] message published")
	return nil
}

func (s *KafkaPushSender) Close() error {
	return s.w.Close()
}
