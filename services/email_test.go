package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artistycode/studio-api/models"
)

func newTestEmailService(endpoint string) *EmailService {
	return &EmailService{
		apiKey:     "test-key",
		fromEmail:  "Artisty Studio <noreply@artisty.studio>",
		adminEmail: "contact@artisty.studio",
		endpoint:   endpoint,
		client:     http.DefaultClient,
	}
}

func TestSendContactNoticeSendsTwoEmails(t *testing.T) {
	var payloads []emailPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		var p emailPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payloads = append(payloads, p)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := newTestEmailService(server.URL)
	err := svc.SendContactNotice(models.ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "I need a website for my bakery",
	})
	require.NoError(t, err)

	require.Len(t, payloads, 2)
	assert.Equal(t, []string{"contact@artisty.studio"}, payloads[0].To)
	assert.Contains(t, payloads[0].HTML, "jane@example.com")
	assert.Equal(t, []string{"jane@example.com"}, payloads[1].To)
	assert.Contains(t, payloads[1].Subject, "Thanks for contacting us")
}

func TestSendOrderNotice(t *testing.T) {
	var payload emailPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := newTestEmailService(server.URL)
	err := svc.SendOrderNotice(models.OrderItem{
		Order: models.Order{
			BuyerName:  "Sam",
			BuyerEmail: "sam@example.com",
			Price:      "25.00",
		},
		ResourceTitle: "Landing Page Kit",
	})
	require.NoError(t, err)

	assert.Contains(t, payload.Subject, "New Order Received from Sam")
	assert.Contains(t, payload.HTML, "Landing Page Kit")
}

func TestSendFailsOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	svc := newTestEmailService(server.URL)
	err := svc.SendOrderStatusUpdate("sam@example.com", "o-1", "Delivered", "")
	assert.Error(t, err)
}

func TestSendWithoutAPIKey(t *testing.T) {
	svc := newTestEmailService("http://unused")
	svc.apiKey = ""

	err := svc.SendOrderStatusUpdate("sam@example.com", "o-1", "Delivered", "")
	assert.ErrorContains(t, err, "RESEND_API_KEY")
}
