package mail

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"equine_billing/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	s.sent = append(s.sent, m...)
	return s.err
}

func TestGomailMailer_Send(t *testing.T) {
	s := &captureSender{}
	m := &GomailMailer{sender: s, from: "billing@example.com", fromName: "Billing"}

	err := m.Send(context.Background(), interfaces.Mail{
		To:      []string{"vet@example.com"},
		Subject: "Your invoice export",
		Body:    "Attached are 2 invoices.",
		Attachments: []interfaces.Attachment{
			{FileName: "invoices.csv", ContentType: "text/csv", Data: []byte("Name,Status\r\n")},
		},
	})
	require.NoError(t, err)
	require.Len(t, s.sent, 1)

	msg := s.sent[0]
	require.Equal(t, []string{"vet@example.com"}, msg.GetHeader("To"))
	require.Equal(t, []string{"Your invoice export"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	require.True(t, strings.Contains(raw, `filename="invoices.csv"`))
	require.True(t, strings.Contains(raw, "text/csv"))
}

func TestGomailMailer_SendError(t *testing.T) {
	boom := errors.New("dial tcp: refused")
	m := &GomailMailer{sender: &captureSender{err: boom}}
	err := m.Send(context.Background(), interfaces.Mail{To: []string{"a@b.c"}})
	require.ErrorIs(t, err, boom)
}
