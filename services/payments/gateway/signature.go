package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

const (
	// SignatureHeader carries the webhook signature on Stripe requests
	SignatureHeader = "Stripe-Signature"
	// DefaultTolerance is the accepted age of a signed webhook
	DefaultTolerance = 5 * time.Minute
)

// Sign produces a Stripe-Signature header value for payload at t
func Sign(payload []byte, secret string, t time.Time) string {
	ts := strconv.FormatInt(t.Unix(), 10)
	return "t=" + ts + ",v1=" + computeSignature(payload, secret, ts)
}

func computeSignature(payload []byte, secret, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a Stripe-Signature header: any v1 entry must match the HMAC-SHA256
// of "t.payload" and t must be within tolerance of now
func VerifySignature(payload []byte, header, secret string, now time.Time, tolerance time.Duration) error {
	if secret == "" || header == "" {
		return apperror.ErrInvalidSignature
	}

	var (
		ts         string
		signatures []string
	)
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			ts = value
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if ts == "" || len(signatures) == 0 {
		return apperror.ErrInvalidSignature
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return apperror.ErrInvalidSignature
	}
	age := now.Sub(time.Unix(unix, 0))
	if age < 0 {
		age = -age
	}
	if tolerance > 0 && age > tolerance {
		return fmt.Errorf("timestamp outside tolerance: %w", apperror.ErrInvalidSignature)
	}

	expected := []byte(computeSignature(payload, secret, ts))
	for _, sig := range signatures {
		if hmac.Equal(expected, []byte(sig)) {
			return nil
		}
	}
	return apperror.ErrInvalidSignature
}

type stripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object checkoutSession `json:"object"`
	} `json:"data"`
}

type checkoutSession struct {
	ID                string            `json:"id"`
	Object            string            `json:"object"`
	PaymentStatus     string            `json:"payment_status"`
	PaymentIntent     json.RawMessage   `json:"payment_intent"`
	ClientReferenceID string            `json:"client_reference_id"`
	Metadata          map[string]string `json:"metadata"`
}

// paymentIntentID accepts both the plain id and an expanded object
func (s checkoutSession) paymentIntentID() string {
	if len(s.PaymentIntent) == 0 {
		return ""
	}
	var id string
	if err := json.Unmarshal(s.PaymentIntent, &id); err == nil {
		return id
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(s.PaymentIntent, &obj); err == nil {
		return obj.ID
	}
	return ""
}

// ParseWebhookEvent verifies payload and maps it onto the events the reconciler acts on
func ParseWebhookEvent(payload []byte, header, secret string, now time.Time) (*models.PaymentEvent, error) {
	if err := VerifySignature(payload, header, secret, now, DefaultTolerance); err != nil {
		return nil, err
	}

	var raw stripeEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, apperror.Validation("malformed webhook payload")
	}

	session := raw.Data.Object
	event := &models.PaymentEvent{
		ID:              raw.ID,
		Type:            raw.Type,
		Kind:            models.PaymentEventIgnored,
		SessionID:       session.ID,
		PaymentIntentID: session.paymentIntentID(),
		BookingID:       session.Metadata["booking_id"],
	}
	if event.BookingID == "" {
		event.BookingID = session.ClientReferenceID
	}

	switch raw.Type {
	case "checkout.session.completed":
		if session.PaymentStatus == "paid" {
			event.Kind = models.PaymentEventCheckoutSucceeded
		}
	case "checkout.session.async_payment_succeeded":
		event.Kind = models.PaymentEventCheckoutSucceeded
	case "checkout.session.expired", "checkout.session.async_payment_failed":
		event.Kind = models.PaymentEventCheckoutCancelled
	}
	return event, nil
}
