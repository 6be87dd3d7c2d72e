package routes

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slight125/FarmFlow/models"
)

func TestCreateTransactionReferenceNumber(t *testing.T) {
	app := setupTestApp(t)
	auth := authHeader(t, 1, models.RoleFarmer)

	post := func(payload string) models.FinancialTransaction {
		req := httptest.NewRequest("POST", "/finance/transactions", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", auth)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var txn models.FinancialTransaction
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&txn))
		return txn
	}

	// blank reference gets a generated one
	generated := post(`{"type":"income","category":"crop_sale","amount":"500","date":"2025-06-01"}`)
	assert.True(t, strings.HasPrefix(generated.ReferenceNumber, "TXN-"),
		"got reference %q", generated.ReferenceNumber)

	// a caller-supplied reference passes through untouched
	supplied := post(`{"type":"expense","category":"fuel","amount":"200","date":"2025-06-02","reference_number":"INV-0042"}`)
	assert.Equal(t, "INV-0042", supplied.ReferenceNumber)
}
