package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmstudio/fitmanage/core/expense"
	testutil "github.com/jmstudio/fitmanage/tests"
)

func TestExpenseAPI(t *testing.T) {
	acct := testutil.CreateStaff(t, staffRepo, "Admin", "expenses", "expenses@test.cd", "pwd", true)
	token := getToken(t, acct)

	var created expense.Expense

	t.Run("unknown category rejected", func(t *testing.T) {
		body := []byte(`{"description":"bribes","amount":10,"category":"bribes"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/expenses", token, body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "category")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		body := []byte(`{"description":"refund","amount":-5,"category":"other"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/expenses", token, body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "amount")
	})

	t.Run("create", func(t *testing.T) {
		body := []byte(`{"description":" January rent ","amount":900,"date":"2031-01-05T00:00:00Z","category":"rent"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/expenses", token, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "January rent", created.Description)
		assert.Equal(t, expense.CategoryRent, created.Category)
	})

	t.Run("retrieve and list", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/expenses/"+created.ID, token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		req, rec = newAuthRequest(http.MethodGet, "/v1/expenses", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), created.ID)
	})

	t.Run("update", func(t *testing.T) {
		body := []byte(`{"description":"January rent","amount":950,"date":"2031-01-05T00:00:00Z","category":"rent"}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/expenses/"+created.ID, token, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var updated expense.Expense
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, 950.0, updated.Amount)
	})

	t.Run("missing id is 404", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/expenses/nope", token,
			[]byte(`{"description":"x","amount":1,"category":"other"}`))
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("destroy", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/expenses/"+created.ID, token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		req, rec = newAuthRequest(http.MethodGet, "/v1/expenses/"+created.ID, token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
