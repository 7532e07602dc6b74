package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	m := BuildReportShareEmail("parent@example.com", ReportShareData{
		ChildName: "Sara Cohen",
		Signature: "k3Xy9a",
		Note:      "<b>see attached</b>",
		Filename:  "report.txt",
		Content:   []byte("WISC-V - Working Memory: 78 (S100)"),
	})
	assert.Equal(t, []string{"parent@example.com"}, m.To)
	assert.Contains(t, m.Subject, "Sara Cohen")
	assert.Contains(t, m.TextBody, "k3Xy9a")
	assert.Contains(t, m.HTMLBody, "&lt;b&gt;see attached&lt;/b&gt;")
	require.Len(t, m.Attachments, 1)

	msg, err := buildMessage("noreply@psyassist.local", m)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `filename="report.txt"`)
}

func TestBuildMessage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  Message
	}{
		{"no from", "", Message{Subject: "s", TextBody: "b"}},
		{"no subject", "a@b.c", Message{TextBody: "b"}},
		{"no body", "a@b.c", Message{Subject: "s"}},
		{"unnamed attachment", "a@b.c", Message{Subject: "s", TextBody: "b", Attachments: []Attachment{{Content: []byte("x")}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			var invalid ErrInvalidMessage
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
}

func TestSend_Disabled(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	err = c.Send(context.Background(), Message{Subject: "s", TextBody: "b"})
	assert.ErrorAs(t, err, &ErrDisabled{})
}

func TestNew_RequiresHostWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	_, err := New(cfg)
	assert.Error(t, err)
}
