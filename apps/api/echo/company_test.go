package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/jmstudio/fitmanage/tests"
)

func TestCompanyAPI(t *testing.T) {
	acct := testutil.CreateStaff(t, staffRepo, "Admin", "company", "company@test.cd", "pwd", true)
	token := getToken(t, acct)

	t.Run("unregistered profile is 404", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/company", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid color rejected", func(t *testing.T) {
		body := []byte(`{"name":"Studio One","phone":"999","primary_color":"purple"}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/company", token, body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "primary_color")
	})

	t.Run("first save registers", func(t *testing.T) {
		body := []byte(`{"name":"Studio One","phone":"999","primary_color":"#ff6600"}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/company", token, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "Studio One")
		assert.NotContains(t, rec.Body.String(), `"registered_at":"0001-01-01`)
	})

	t.Run("subsequent get and edit", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/company", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		body := []byte(`{"name":"Studio Two","phone":"999"}`)
		req, rec = newAuthRequest(http.MethodPut, "/v1/company", token, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Studio Two")
	})
}
