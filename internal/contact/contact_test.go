package contact

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

var form = Form{FullName: "Ada\r\nBcc: x@example.com", Email: "ada@example.com", Message: "Hola"}

func TestSendWithoutCredentials(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "", "", "me@example.com")
	assert.ErrorIs(t, m.Send(form), ErrNotConfigured)
}

func TestSendBuildsMessage(t *testing.T) {
	s := &fakeSender{}
	m := NewMailerWithSender(s, "site@example.com", "me@example.com")
	require.NoError(t, m.Send(form))
	require.Len(t, s.sent, 1)

	msg := s.sent[0]
	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("Reply-To"))
	assert.Equal(t, []string{"Portfolio Contact: Ada Bcc: x@example.com"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hola")
}

func TestSendWrapsTransportError(t *testing.T) {
	boom := errors.New("dial tcp: refused")
	m := NewMailerWithSender(&fakeSender{err: boom}, "a@example.com", "b@example.com")

	err := m.Send(form)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "send contact mail")
}
