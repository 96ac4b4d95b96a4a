package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polaris-api/pkg/log"
)

func TestNewValidatesWebhookURL(t *testing.T) {
	_, err := New(log.NewNop(), "", Config{})
	assert.ErrorIs(t, err, ErrWebhookRequired)

	_, err = New(log.NewNop(), "https://example.com/hook", Config{})
	assert.ErrorIs(t, err, ErrInvalidWebhook)

	_, err = New(log.NewNop(), "https://discord.com/api/webhooks/123/", Config{})
	assert.ErrorIs(t, err, ErrInvalidWebhook)

	d, err := New(log.NewNop(), "https://discord.com/api/webhooks/123/abc", Config{})
	require.NoError(t, err)
	assert.NoError(t, d.Close())
}

func TestSendEmbed(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := newImpl(log.NewNop(), srv.URL, Config{})
	err := d.SendEmbed(context.Background(), MessageOptions{
		Type:   MessageTypeError,
		Title:  "Critical alert",
		Fields: []EmbedField{{Name: "Message", Value: strings.Repeat("x", 2000)}},
	})
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	assert.Equal(t, DefaultUsername, got.Username)
	assert.Equal(t, ColorError, got.Embeds[0].Color)
	assert.Len(t, got.Embeds[0].Fields[0].Value, MaxFieldValueLen)
}

func TestSendEmbedRetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := newImpl(log.NewNop(), srv.URL, Config{RetryCount: 2, RetryDelay: time.Millisecond})
	err := d.ReportBug(context.Background(), "boom")

	assert.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}
