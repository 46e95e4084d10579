package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmstudio/fitmanage/core/teacher"
	testutil "github.com/jmstudio/fitmanage/tests"
)

func TestTeacherAPI(t *testing.T) {
	acct := testutil.CreateStaff(t, staffRepo, "Admin", "teachers", "teachers@test.cd", "pwd", true)
	token := getToken(t, acct)

	var created teacher.Teacher

	t.Run("create requires name and phone", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/teachers", token, []byte(`{"specialty":"yoga"}`))
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "name")
		assert.Contains(t, rec.Body.String(), "phone")
	})

	t.Run("create", func(t *testing.T) {
		body := []byte(`{"name":" Carla ","specialty":"pilates","phone":"777","email":"Carla@Test.CD","salary":1500}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/teachers", token, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Carla", created.Name)
		assert.Equal(t, "carla@test.cd", created.Email)
	})

	t.Run("retrieve and list", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/teachers/"+created.ID, token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Carla")

		req, rec = newAuthRequest(http.MethodGet, "/v1/teachers", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), created.ID)
	})

	t.Run("update", func(t *testing.T) {
		body := []byte(`{"name":"Carla","specialty":"crossfit","phone":"777","salary":1800}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/teachers/"+created.ID, token, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var updated teacher.Teacher
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "crossfit", updated.Specialty)
		assert.Equal(t, 1800.0, updated.Salary)
	})

	t.Run("missing id is 404", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/teachers/nope", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		req, rec = newAuthRequest(http.MethodDelete, "/v1/teachers/nope", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("destroy", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/teachers/"+created.ID, token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		req, rec = newAuthRequest(http.MethodGet, "/v1/teachers/"+created.ID, token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
