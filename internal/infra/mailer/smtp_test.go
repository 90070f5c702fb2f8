//go:build unit

package mailer_test

import (
	"context"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"casegate/internal/infra/mailer"
	"casegate/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smtpSink accepts one plain SMTP session at a time and records the envelope and data.
type smtpSink struct {
	ln net.Listener

	mu    sync.Mutex
	from  string
	rcpts []string
	data  string
}

func newSMTPSink(t *testing.T) *smtpSink {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := &smtpSink{ln: ln}
	t.Cleanup(func() { _ = ln.Close() })
	go s.serve()
	return s
}

func (s *smtpSink) port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *smtpSink) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.session(textproto.NewConn(conn))
	}
}

func (s *smtpSink) session(c *textproto.Conn) {
	defer c.Close()
	_ = c.PrintfLine("220 localhost ESMTP")
	for {
		line, err := c.ReadLine()
		if err != nil {
			return
		}
		verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
		switch {
		case verb == "EHLO" || verb == "HELO":
			_ = c.PrintfLine("250 localhost")
		case strings.HasPrefix(strings.ToUpper(line), "MAIL FROM:"):
			s.mu.Lock()
			s.from = line[len("MAIL FROM:"):]
			s.mu.Unlock()
			_ = c.PrintfLine("250 OK")
		case strings.HasPrefix(strings.ToUpper(line), "RCPT TO:"):
			s.mu.Lock()
			s.rcpts = append(s.rcpts, line[len("RCPT TO:"):])
			s.mu.Unlock()
			_ = c.PrintfLine("250 OK")
		case verb == "DATA":
			_ = c.PrintfLine("354 go ahead")
			body, err := c.ReadDotBytes()
			if err != nil {
				return
			}
			s.mu.Lock()
			s.data = string(body)
			s.mu.Unlock()
			_ = c.PrintfLine("250 queued")
		case verb == "QUIT":
			_ = c.PrintfLine("221 bye")
			return
		default:
			_ = c.PrintfLine("250 OK")
		}
	}
}

func (s *smtpSink) snapshot() (string, []string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.from, append([]string(nil), s.rcpts...), s.data
}

func smtpConfig(port int) config.MailConfig {
	cfg := config.NewTestConfig().Mail
	cfg.Driver = mailer.DriverSMTP
	cfg.SMTPHost = "127.0.0.1"
	cfg.SMTPPort = port
	cfg.SMTPTLS = false
	cfg.Timeout = 5 * time.Second
	return cfg
}

func TestSMTPSender_Send(t *testing.T) {
	sink := newSMTPSink(t)
	sender, err := mailer.NewSMTPSender(smtpConfig(sink.port()))
	require.NoError(t, err)

	id, err := sender.Send(context.Background(), mailer.Message{
		To:      []string{"a@b.de"},
		Subject: "Your access",
		HTML:    "<p>hello</p>",
	})

	require.NoError(t, err)
	require.NotEmpty(t, id)

	from, rcpts, data := sink.snapshot()
	assert.Contains(t, from, "<noreply@example.com>")
	require.Len(t, rcpts, 1)
	assert.Contains(t, rcpts[0], "<a@b.de>")
	assert.Contains(t, data, "Message-ID:")
	assert.Contains(t, data, id)
	assert.Contains(t, data, "Subject: Your access")
	assert.Contains(t, data, "Example Consulting")
}

func TestSMTPSender_ServerUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	sender, err := mailer.NewSMTPSender(smtpConfig(port))
	require.NoError(t, err)

	_, err = sender.Send(context.Background(), mailer.Message{
		To:      []string{"a@b.de"},
		Subject: "Your access",
		HTML:    "<p>hello</p>",
	})

	assert.Error(t, err)
}
