package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artistycode/studio-api/models"
)

func TestWriteOrdersCSV(t *testing.T) {
	orders := []models.OrderItem{
		{
			Order: models.Order{
				ID:          "o-1",
				Price:       "49.99",
				BuyerName:   "Jane Doe",
				BuyerEmail:  "jane@example.com",
				BuyerNumber: "+1 555 0100",
				Note:        "ship fast, please",
				Delivered:   true,
				CreatedAt:   time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC),
			},
			ResourceTitle: "Portfolio Template",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOrdersCSV(&buf, orders))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Buyer Email")
	assert.Contains(t, lines[1], "Portfolio Template")
	assert.Contains(t, lines[1], "\"ship fast, please\"")
	assert.Contains(t, lines[1], "2026-02-03 10:30")
}

func TestWriteRegistrationsCSVExcludesSignature(t *testing.T) {
	registrations := []models.Registration{
		{
			ID:        "r-1",
			FirstName: "Sam",
			LastName:  "Lee",
			Email:     "sam@example.com",
			Signature: "data:image/png;base64,SECRET",
			Status:    models.RegistrationPending,
			Date:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRegistrationsCSV(&buf, registrations))

	out := buf.String()
	assert.Contains(t, out, "sam@example.com")
	assert.NotContains(t, out, "SECRET")
}

func TestWriteTransactionsCSV(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t-1", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Project: "Site Redesign", Category: "Spend", Amount: "120.50", DueAmount: "10"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, transactions))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "t-1,2026-03-01,Site Redesign,Spend,120.50,10,", lines[1])
}
