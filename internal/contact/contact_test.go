package contact

import (
	"context"
	"errors"
	"net/smtp"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{Name: "Ada Lovelace", Email: "ada@example.com", Message: "Hello & welcome!"}
}

type recorder struct {
	mu       sync.Mutex
	statuses []Status
}

func (r *recorder) record(s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *recorder) get() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Status(nil), r.statuses...)
}

type failingMailer struct{}

func (failingMailer) Deliver(context.Context, Form) (Handoff, error) {
	return Handoff{}, errors.New("relay down")
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		field string
		tag   string
	}{
		{"missing name", Form{Email: "a@b.co", Message: "hi"}, "name", "required"},
		{"missing email", Form{Name: "A", Message: "hi"}, "email", "required"},
		{"bad email", Form{Name: "A", Email: "nope", Message: "hi"}, "email", "email"},
		{"missing message", Form{Name: "A", Email: "a@b.co"}, "message", "required"},
		{"name with line break", Form{Name: "Eve\r\nBcc: x@example.com", Email: "a@b.co", Message: "hi"}, "name", "singleline"},
		{"name with bare newline", Form{Name: "Eve\nBcc: x@example.com", Email: "a@b.co", Message: "hi"}, "name", "singleline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.tag, verr.Tag)
		})
	}

	assert.NoError(t, validForm().Validate())
}

func TestFormNormalize_BlankIsEmpty(t *testing.T) {
	f := Form{Name: "   ", Email: "a@b.co", Message: "hi"}.Normalize()
	assert.Error(t, f.Validate())
}

func TestSubjectAndBody(t *testing.T) {
	f := validForm()
	assert.Equal(t, "Portfolio Contact from Ada Lovelace", f.Subject())
	assert.Equal(t, "Name: Ada Lovelace\nEmail: ada@example.com\n\nMessage:\nHello & welcome!", f.Body())
}

func TestMailtoURI(t *testing.T) {
	uri := MailtoURI("me@example.com", "Hi there", "a&b=c+d\nline")
	assert.Equal(t, "mailto:me@example.com?subject=Hi%20there&body=a%26b%3Dc%2Bd%0Aline", uri)

	parsed, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "a&b=c+d\nline", parsed.Query().Get("body"))
}

func TestMailtoMailer(t *testing.T) {
	h, err := MailtoMailer{To: "me@example.com"}.Deliver(context.Background(), validForm())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h.URI, "mailto:me@example.com?subject=Portfolio%20Contact%20from%20Ada%20Lovelace"))

	_, err = MailtoMailer{}.Deliver(context.Background(), validForm())
	assert.Error(t, err)
}

func TestSMTPMailer(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", "587", "user@example.com", "secret", "me@example.com")
	var gotAddr string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotMsg = msg
		assert.Equal(t, "user@example.com", from)
		assert.Equal(t, []string{"me@example.com"}, to)
		return nil
	}

	h, err := m.Deliver(context.Background(), validForm())
	require.NoError(t, err)
	assert.Empty(t, h.URI)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Contains(t, string(gotMsg), "Reply-To: ada@example.com\r\n")
	assert.Contains(t, string(gotMsg), "Subject: Portfolio Contact from Ada Lovelace\r\n")

	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("boom") }
	_, err = m.Deliver(context.Background(), validForm())
	assert.Error(t, err)

	_, err = NewSMTPMailer("h", "1", "", "", "x").Deliver(context.Background(), validForm())
	assert.Error(t, err)
}

func TestSMTPMailer_RejectsHeaderInjection(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", "587", "user@example.com", "secret", "me@example.com")
	sent := false
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		sent = true
		return nil
	}

	f := validForm()
	f.Name = "Eve\r\nBcc: victim@example.com"
	_, err := m.Deliver(context.Background(), f)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.False(t, sent)
}

func TestMachine_RejectsMultilineName(t *testing.T) {
	m := NewMachine(MailtoMailer{To: "me@example.com"}, time.Millisecond, time.Millisecond)
	defer m.Close()

	f := validForm()
	f.Name = "Eve\nBcc: victim@example.com"
	_, err := m.Submit(context.Background(), f)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StatusIdle, m.Status())
}

func TestMachine_FullCycle(t *testing.T) {
	m := NewMachine(MailtoMailer{To: "me@example.com"}, 5*time.Millisecond, 20*time.Millisecond)
	defer m.Close()
	rec := &recorder{}
	m.Subscribe(rec.record)

	h, err := m.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.NotEmpty(t, h.URI)
	assert.Equal(t, StatusSent, m.Status())

	assert.Eventually(t, func() bool { return m.Status() == StatusIdle }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []Status{StatusSubmitting, StatusSent, StatusIdle}, rec.get())
}

func TestMachine_ValidationLeavesIdle(t *testing.T) {
	m := NewMachine(MailtoMailer{To: "me@example.com"}, time.Millisecond, time.Millisecond)
	defer m.Close()
	rec := &recorder{}
	m.Subscribe(rec.record)

	_, err := m.Submit(context.Background(), Form{Name: "A"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, StatusIdle, m.Status())
	assert.Empty(t, rec.get())
}

func TestMachine_RejectsConcurrentSubmit(t *testing.T) {
	m := NewMachine(MailtoMailer{To: "me@example.com"}, 200*time.Millisecond, time.Second)
	defer m.Close()

	started := make(chan struct{})
	m.Subscribe(func(s Status) {
		if s == StatusSubmitting {
			close(started)
		}
	})

	go m.Submit(context.Background(), validForm()) //nolint:errcheck
	<-started

	_, err := m.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrBusy)
}

func TestMachine_DeliveryFailureReturnsToIdle(t *testing.T) {
	m := NewMachine(failingMailer{}, time.Millisecond, time.Millisecond)
	defer m.Close()

	_, err := m.Submit(context.Background(), validForm())
	assert.ErrorContains(t, err, "relay down")
	assert.Equal(t, StatusIdle, m.Status())
}

func TestMachine_CancelDuringDelay(t *testing.T) {
	m := NewMachine(MailtoMailer{To: "me@example.com"}, time.Second, time.Second)
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.Submit(ctx, validForm())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusIdle, m.Status())
}

func TestMachine_CloseStopsPendingReset(t *testing.T) {
	m := NewMachine(MailtoMailer{To: "me@example.com"}, time.Millisecond, 30*time.Millisecond)

	_, err := m.Submit(context.Background(), validForm())
	require.NoError(t, err)
	m.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, StatusSent, m.Status())

	_, err = m.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrClosed)
}
