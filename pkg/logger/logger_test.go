package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "text")
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
	require.IsType(t, &logrus.TextFormatter{}, l.Formatter)

	l, err = New("info", "json")
	require.NoError(t, err)
	require.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	_, err = New("loud", "json")
	require.Error(t, err)
}

func TestFromContext(t *testing.T) {
	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "u1")

	entry := FromContext(ctx)
	require.Equal(t, "req-1", entry.Data["request_id"])
	require.Equal(t, "u1", entry.Data["user_id"])
	require.Equal(t, "req-1", RequestIDFromCtx(ctx))

	require.Empty(t, FromContext(context.Background()).Data)
	require.Empty(t, RequestIDFromCtx(context.Background()))
}
