//go:build unit

package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"bloom-express/internal/infra/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify(t *testing.T) {
	const secret = "whsec_test"
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	verifier := payment.NewVerifier(secret, 5*time.Minute)

	t.Run("valid signature", func(t *testing.T) {
		ts := now.Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, sign(secret, ts, payload))

		assert.NoError(t, verifier.Verify(payload, header, now))
	})

	t.Run("one valid signature among several is enough", func(t *testing.T) {
		ts := now.Unix()
		header := fmt.Sprintf("t=%d,v1=%s,v1=%s", ts, hex.EncodeToString(make([]byte, 32)), sign(secret, ts, payload))

		assert.NoError(t, verifier.Verify(payload, header, now))
	})

	t.Run("wrong secret", func(t *testing.T) {
		ts := now.Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, sign("whsec_other", ts, payload))

		assert.ErrorIs(t, verifier.Verify(payload, header, now), payment.ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		ts := now.Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, sign(secret, ts, payload))

		assert.ErrorIs(t, verifier.Verify([]byte(`{}`), header, now), payment.ErrInvalidSignature)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		ts := now.Add(-6 * time.Minute).Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, sign(secret, ts, payload))

		assert.ErrorIs(t, verifier.Verify(payload, header, now), payment.ErrStaleTimestamp)
	})

	t.Run("future timestamp outside tolerance", func(t *testing.T) {
		ts := now.Add(6 * time.Minute).Unix()
		header := fmt.Sprintf("t=%d,v1=%s", ts, sign(secret, ts, payload))

		assert.ErrorIs(t, verifier.Verify(payload, header, now), payment.ErrStaleTimestamp)
	})

	t.Run("malformed headers", func(t *testing.T) {
		for _, header := range []string{"", "t=abc,v1=00", "v1=00", fmt.Sprintf("t=%d", now.Unix())} {
			assert.ErrorIs(t, verifier.Verify(payload, header, now), payment.ErrInvalidSignature, "header %q", header)
		}
	})
}

func TestParseWebhookEvent(t *testing.T) {
	event, err := payment.ParseWebhookEvent([]byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "payment_intent.succeeded", event.Type)
	assert.Equal(t, "pi_123", event.Data.Object.ID)

	_, err = payment.ParseWebhookEvent([]byte(`not json`))
	assert.Error(t, err)
}
