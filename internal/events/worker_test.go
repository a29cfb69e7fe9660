package events

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georise/incident_dispatch_system/internal/config"
)

func TestDeliver_SignsAndPostsPayload(t *testing.T) {
	var gotBody string
	var gotSignature, gotEvent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotEvent = r.Header.Get("X-Dispatch-Event")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "top-secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewDeliveryWorker(nil, logger, cfg)

	payload := `{"event":"assignment:created","payload":{}}`
	worker.deliver(context.Background(), Envelope{Event: "assignment:created"}, payload)

	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "assignment:created", gotEvent)

	mac := hmac.New(sha256.New, []byte("top-secret"))
	mac.Write([]byte(payload))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestDeliver_RetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewDeliveryWorker(nil, logger, cfg)

	worker.deliver(context.Background(), Envelope{Event: "incident:resolved"}, `{}`)
	require.Equal(t, 3, attempts)
}
