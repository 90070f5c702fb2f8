//go:build unit || e2e

package mailtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// SentMail is one request the fake provider accepted.
type SentMail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Provider is an in-process stand-in for the Resend emails endpoint.
type Provider struct {
	server *httptest.Server

	mu         sync.Mutex
	sent       []SentMail
	failStatus int
	failBody   string
	seq        int
}

func NewProvider(t *testing.T) *Provider {
	t.Helper()

	p := &Provider{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /emails", p.handle)
	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

// URL is the base URL to put in MailConfig.ResendAPIURL.
func (p *Provider) URL() string {
	return p.server.URL
}

func (p *Provider) handle(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failStatus != 0 {
		w.WriteHeader(p.failStatus)
		_, _ = w.Write([]byte(p.failBody))
		return
	}

	var m SentMail
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid json"}`))
		return
	}
	p.sent = append(p.sent, m)
	p.seq++

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"id": fmt.Sprintf("email_%d", p.seq)})
}

// FailWith makes every following request answer with status and body.
func (p *Provider) FailWith(status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failStatus = status
	p.failBody = body
}

// Reset forgets recorded mail and clears any failure mode.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = nil
	p.failStatus = 0
	p.failBody = ""
}

func (p *Provider) Sent() []SentMail {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]SentMail(nil), p.sent...)
}

// SentTo filters recorded mail by recipient.
func (p *Provider) SentTo(addr string) []SentMail {
	var out []SentMail
	for _, m := range p.Sent() {
		for _, to := range m.To {
			if to == addr {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
