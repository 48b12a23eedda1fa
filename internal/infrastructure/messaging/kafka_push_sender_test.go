package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"equine_billing/internal/domain/entities"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPushSender_Send(t *testing.T) {
	w := &recordingWriter{}
	s := &KafkaPushSender{w: w, topic: "push-notifications"}

	err := s.Send(context.Background(), entities.PushMessage{Tokens: []string{"t1", "t2"}, Title: "New Invoice", Body: "You have new invoice from Dr Vet."})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	require.Equal(t, "push-notifications", w.msgs[0].Topic)

	var ev PushEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	require.Equal(t, PushEvent{Type: "push", Title: "New Invoice", Body: "You have new invoice from Dr Vet.", Tokens: []string{"t1", "t2"}}, ev)
}

func TestKafkaPushSender_SendError(t *testing.T) {
	boom := errors.New("leader not available")
	s := &KafkaPushSender{w: &recordingWriter{err: boom}, topic: "push"}
	err := s.Send(context.Background(), entities.PushMessage{Title: "x"})
	require.ErrorIs(t, err, boom)
}
